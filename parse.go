package xeui

import (
	"fmt"
	"net"
)

// Parse 解析字符串形式的 MAC 地址。
//
// 支持四种写法，大小写不敏感：
//
//	a0b1c2d3e4f5          裸十六进制（12 个数字）
//	a0-b1-c2-d3-e4-f5     连字符分隔（6 组，每组 2 个数字）
//	a0:b1:c2:d3:e4:f5     冒号分隔（6 组，每组 2 个数字）
//	a0b1.c2d3.e4f5        点号分隔（3 组，每组 4 个数字）
//
// 语法为严格匹配：不忽略首尾空白，不接受混用分隔符、前导或
// 尾随分隔符，也不接受其他长度（如 EUI-64）。任何不符合上述
// 写法的输入一律返回 [ErrInvalidAddress]。
//
// 设计决策：按输入长度直接分派到对应写法的解析器，每种写法的
// 分隔符位置固定，单次线性扫描即可完成校验与取值，不依赖正则。
func Parse(s string) (Addr, error) {
	switch len(s) {
	case 12:
		return parseBare(s)
	case 17:
		if sep := s[2]; sep == ':' || sep == '-' {
			return parseWithSeparator(s, sep)
		}
	case 14:
		return parseDot(s)
	}
	return Addr{}, ErrInvalidAddress
}

// MustParse 与 [Parse] 相同，但解析失败时 panic。
//
// 仅适用于包级常量、测试等输入可静态保证合法的场景。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xeui.MustParse(%q): %v", s, err))
	}
	return addr
}

// ParseBytes 由 6 字节切片构造地址。
//
// 切片长度不为 6 时返回 [ErrInvalidLength]。内容会被复制，
// 后续修改切片不影响返回的地址。
func ParseBytes(b []byte) (Addr, error) {
	if len(b) != 6 {
		return Addr{}, fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(b))
	}
	var addr Addr
	copy(addr.bytes[:], b)
	return addr, nil
}

// FromHardwareAddr 由标准库的 [net.HardwareAddr] 构造地址。
//
// 仅接受 48 位地址；EUI-64 等其他长度返回 [ErrInvalidLength]。
func FromHardwareAddr(hw net.HardwareAddr) (Addr, error) {
	return ParseBytes(hw)
}

// parseBare 解析 12 位连续十六进制，如 "a0b1c2d3e4f5"。
func parseBare(s string) (Addr, error) {
	var addr Addr
	for i := range 6 {
		b, ok := parseHexByte(s, i*2)
		if !ok {
			return Addr{}, ErrInvalidAddress
		}
		addr.bytes[i] = b
	}
	return addr, nil
}

// parseWithSeparator 解析冒号或连字符写法，如 "a0:b1:c2:d3:e4:f5"。
// 分隔符位置固定在 2、5、8、11、14。
func parseWithSeparator(s string, sep byte) (Addr, error) {
	var addr Addr
	for i := range 6 {
		pos := i * 3
		if i > 0 && s[pos-1] != sep {
			return Addr{}, ErrInvalidAddress
		}
		b, ok := parseHexByte(s, pos)
		if !ok {
			return Addr{}, ErrInvalidAddress
		}
		addr.bytes[i] = b
	}
	return addr, nil
}

// parseDot 解析思科点分写法，如 "a0b1.c2d3.e4f5"。
// 点号位置固定在 4、9，每组 4 个十六进制数字。
func parseDot(s string) (Addr, error) {
	if s[4] != '.' || s[9] != '.' {
		return Addr{}, ErrInvalidAddress
	}
	var addr Addr
	offsets := [6]int{0, 2, 5, 7, 10, 12}
	for i, pos := range offsets {
		b, ok := parseHexByte(s, pos)
		if !ok {
			return Addr{}, ErrInvalidAddress
		}
		addr.bytes[i] = b
	}
	return addr, nil
}

// parseHexByte 解析 s[pos:pos+2] 的两个十六进制数字为一个字节。
// 调用方保证 pos+2 不越界。
func parseHexByte(s string, pos int) (byte, bool) {
	hi := hexValue(s[pos])
	lo := hexValue(s[pos+1])
	if hi < 0 || lo < 0 {
		return 0, false
	}
	return byte(hi<<4 | lo), true
}

// hexValue 返回十六进制字符的数值，非法字符返回 -1。
func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}
