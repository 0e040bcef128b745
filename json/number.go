package json

import (
	"math"
	"strconv"
)

// appendInt 快速 int64 追加（0-99 走查表路径）
func appendInt(dst []byte, v int64) []byte {
	if v >= 0 && v < 100 {
		return appendSmallInt(dst, int(v))
	}
	return strconv.AppendInt(dst, v, 10)
}

// appendSmallInt 小整数快速路径
func appendSmallInt(dst []byte, v int) []byte {
	if v < 10 {
		return append(dst, byte('0'+v))
	}
	return append(dst, byte('0'+v/10), byte('0'+v%10))
}

// appendFloat 追加浮点数
//
// JSON 不支持 NaN/Inf，输出 null；±1e15 以内的整数值按整数输出。
func appendFloat(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	if f == math.Trunc(f) && f >= -1e15 && f <= 1e15 {
		return appendInt(dst, int64(f))
	}
	return strconv.AppendFloat(dst, f, 'f', -1, 64)
}
