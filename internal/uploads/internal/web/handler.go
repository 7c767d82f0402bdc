// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/lithammer/shortuuid/v4"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	client *sts.Client
	// 临时密钥的权限
	actions []string

	appID   string
	bucket  string
	region  string
	baseURL string
}

func NewHandler(secretID, secretKey, appid, bucket,
	region, baseURL string) *Handler {
	c := sts.NewClient(
		secretID,
		secretKey,
		http.DefaultClient,
	)
	return &Handler{client: c,
		region:  region,
		appID:   appid,
		bucket:  bucket,
		baseURL: baseURL,
		actions: []string{
			// 简单上传
			"name/cos:PostObject",
			"name/cos:PutObject",
			// 分片上传
			"name/cos:InitiateMultipartUpload",
			"name/cos:ListMultipartUploads",
			"name/cos:ListParts",
			"name/cos:UploadPart",
			"name/cos:CompleteMultipartUpload",
		},
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	uploads := server.Group("/uploads")
	uploads.POST("/authorization", ginx.B(h.TempAuthCode))
}

// TempAuthCode 生成对象 key 并签出只对这个 key 有效的临时密钥，
// 客户端拿着密钥直传，不经过服务端中转
func (h *Handler) TempAuthCode(ctx *ginx.Context, req TmpAuthCodeReq) (ginx.Result, error) {
	var key string
	switch req.Kind {
	case "version":
		key = "versions/" + shortuuid.New()
	case "screenshot":
		key = "screenshots/" + shortuuid.New()
	default:
		return invalidInputResult, nil
	}
	// 存储桶的命名格式为 BucketName-APPID
	resource := fmt.Sprintf("qcs::cos:%s:uid/%s:%s-%s/%s",
		h.region, h.appID,
		h.bucket, h.appID, key)
	opt := &sts.CredentialOptions{
		DurationSeconds: int64(time.Hour.Seconds()),
		Region:          h.region,
		Policy: &sts.CredentialPolicy{
			Statement: []sts.CredentialPolicyStatement{
				{
					Action: h.actions,
					Effect: "allow",
					Resource: []string{
						resource,
					},
					Condition: map[string]map[string]interface{}{
						"string_equal": {
							"cos:content-type": req.Type,
						},
					},
				},
			},
		},
	}

	res, err := h.client.GetCredential(opt)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: TmpAuthCode{
			SecretId:     res.Credentials.TmpSecretID,
			SecretKey:    res.Credentials.TmpSecretKey,
			SessionToken: res.Credentials.SessionToken,
			StartTime:    res.StartTime,
			ExpiredTime:  res.ExpiredTime,
			Key:          key,
			URL:          h.PublicURL(key),
		},
	}, nil
}

// PublicURL 存储 key 到公开访问地址
func (h *Handler) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", h.baseURL, key)
}
