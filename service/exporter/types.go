package exporter

import (
	"context"
	"io"
)

// Exporter 导出用户的题目结果
type Exporter interface {
	Export(ctx context.Context, userID uint64, contestType string, writer io.Writer) error
}
