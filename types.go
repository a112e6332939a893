package main

// Request/response DTOs. Keep them minimal and explicit.

type loginReq struct {
	Password string `json:"password"`
}

type tokenResp struct {
	Token string `json:"token"`
}

type listResp struct {
	Items []string `json:"items"`
}

type okResp struct {
	OK bool `json:"ok"`
}
