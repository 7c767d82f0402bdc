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

package config

type S7Config struct {
	DB      DBConfig
	Storage StorageConfig
}

type DBConfig struct {
	DSN string
}

// StorageConfig 对象存储配置，上传走临时密钥，下载走 BaseURL 拼接
type StorageConfig struct {
	SecretID  string
	SecretKey string
	AppID     string
	Bucket    string
	Region    string
	BaseURL   string
}
