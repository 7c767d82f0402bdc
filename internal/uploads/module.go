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

package uploads

import (
	"github.com/simplici7y/s7/internal/uploads/internal/web"
)

type Handler = web.Handler

// NewHandler baseURL 形如 https://cdn.example.com，不带末尾斜杠
func NewHandler(secretID, secretKey, appid, bucket, region, baseURL string) *Handler {
	return web.NewHandler(secretID, secretKey, appid, bucket, region, baseURL)
}
