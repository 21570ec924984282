//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在 gdata 打开前准备 Android 偏好目录
//
// gdata 在 Android 上把数据写到 /data/data/{package}/ 下，但不会创建子目录。
//
// 返回:
//   - error: 包名无法识别、目录无法创建或不可写时返回错误
func EnsureStorageDir() error {
	root := StoragePath()
	if root == "" {
		return fmt.Errorf("failed to detect Android package name")
	}

	dir := filepath.Join(root, "preferences")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	marker := filepath.Join(dir, ".writable")
	if err := os.WriteFile(marker, nil, 0644); err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	return os.Remove(marker)
}

// StoragePath 返回应用私有目录 /data/data/{package}，识别失败时返回空字符串
func StoragePath() string {
	pkg, err := androidPackage()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}

// androidPackage 从 /proc/self/cmdline 读取包名（第一个 NUL 之前的部分）
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	pkg := string(bytes.TrimSpace(data))
	if pkg == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return pkg, nil
}
