package web

// TmpAuthCodeReq Kind 只认 version 和 screenshot，Type 是上传的 content-type
type TmpAuthCodeReq struct {
	Kind string `json:"kind"`
	Type string `json:"type"`
}

type TmpAuthCode struct {
	SecretId     string `json:"secretId"`
	SecretKey    string `json:"secretKey"`
	SessionToken string `json:"sessionToken"`
	StartTime    int    `json:"startTime"`
	ExpiredTime  int    `json:"expiredTime"`
	// Key 服务端生成的对象 key，客户端按这个传
	Key string `json:"key"`
	// URL 上传完成后的公开访问地址
	URL string `json:"url"`
}
