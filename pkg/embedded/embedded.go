// Package embedded 提供嵌入数据文件的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量声明在项目根目录（embed.go），启动时通过 Init 注入。
// 路径必须以 "data/" 开头。
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

const dataPrefix = "data/"

var (
	dataFS      fs.FS
	initialized bool
)

// Init 注入数据文件系统
// 必须在任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 统一路径分隔符并校验前缀
func normalize(path string) (string, error) {
	if !initialized {
		return "", fmt.Errorf("embedded package not initialized, call Init() first")
	}
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	if !strings.HasPrefix(path, dataPrefix) {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// ReadFile 读取嵌入文件内容
func ReadFile(path string) ([]byte, error) {
	p, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, p)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	p, err := normalize(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, p)
	return err == nil
}
