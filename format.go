package xeui

// Format 指定地址的字符串输出格式。
type Format uint8

// 支持的输出格式。默认格式为 [FormatColon]，与 [Addr.String] 一致。
const (
	// FormatColon 冒号分隔小写，如 "a0:b1:c2:d3:e4:f5"。
	FormatColon Format = iota
	// FormatDash 连字符分隔小写，如 "a0-b1-c2-d3-e4-f5"。
	FormatDash
	// FormatDot 思科点分小写，如 "a0b1.c2d3.e4f5"。
	FormatDot
	// FormatBare 无分隔符小写，如 "a0b1c2d3e4f5"。
	FormatBare
	// FormatColonUpper 冒号分隔大写，如 "A0:B1:C2:D3:E4:F5"。
	FormatColonUpper
	// FormatDashUpper 连字符分隔大写，如 "A0-B1-C2-D3-E4-F5"。
	FormatDashUpper
	// FormatDotUpper 思科点分大写，如 "A0B1.C2D3.E4F5"。
	FormatDotUpper
	// FormatBareUpper 无分隔符大写，如 "A0B1C2D3E4F5"。
	FormatBareUpper
)

const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// String 返回冒号分隔的小写形式，如 "a0:b1:c2:d3:e4:f5"。
//
// 实现 [fmt.Stringer]。这是本包的规范输出格式，[Addr.MarshalText]
// 与 [Addr.Value] 均采用同一格式。其他格式见 [Addr.FormatString]。
func (a Addr) String() string {
	return a.FormatString(FormatColon)
}

// FormatString 按指定格式返回地址字符串。
//
// 未知格式按 [FormatColon] 处理。所有格式的输出均可被 [Parse]
// 重新解析，往返无损。
func (a Addr) FormatString(format Format) string {
	switch format {
	case FormatDash:
		return formatWithSep(a.bytes, '-', hexLower)
	case FormatDot:
		return formatDot(a.bytes, hexLower)
	case FormatBare:
		return formatBare(a.bytes, hexLower)
	case FormatColonUpper:
		return formatWithSep(a.bytes, ':', hexUpper)
	case FormatDashUpper:
		return formatWithSep(a.bytes, '-', hexUpper)
	case FormatDotUpper:
		return formatDot(a.bytes, hexUpper)
	case FormatBareUpper:
		return formatBare(a.bytes, hexUpper)
	default:
		return formatWithSep(a.bytes, ':', hexLower)
	}
}

// formatWithSep 输出两位一组、单字符分隔的 17 字节形式。
// 固定长度栈上缓冲，单次分配发生在最终的 string 转换。
func formatWithSep(b [6]byte, sep byte, hex string) string {
	var buf [17]byte
	for i, x := range b {
		pos := i * 3
		buf[pos] = hex[x>>4]
		buf[pos+1] = hex[x&0x0F]
		if i < 5 {
			buf[pos+2] = sep
		}
	}
	return string(buf[:])
}

// formatDot 输出四位一组、点号分隔的 14 字节形式。
func formatDot(b [6]byte, hex string) string {
	var buf [14]byte
	pos := 0
	for i, x := range b {
		buf[pos] = hex[x>>4]
		buf[pos+1] = hex[x&0x0F]
		pos += 2
		if i == 1 || i == 3 {
			buf[pos] = '.'
			pos++
		}
	}
	return string(buf[:])
}

// formatBare 输出无分隔符的 12 字节形式。
func formatBare(b [6]byte, hex string) string {
	var buf [12]byte
	for i, x := range b {
		buf[i*2] = hex[x>>4]
		buf[i*2+1] = hex[x&0x0F]
	}
	return string(buf[:])
}

// marshalColonBytes 输出冒号分隔小写的字节切片，供序列化接口复用，
// 避免中转 string 的二次拷贝。
func marshalColonBytes(b [6]byte) []byte {
	buf := make([]byte, 17)
	for i, x := range b {
		pos := i * 3
		buf[pos] = hexLower[x>>4]
		buf[pos+1] = hexLower[x&0x0F]
		if i < 5 {
			buf[pos+2] = ':'
		}
	}
	return buf
}
