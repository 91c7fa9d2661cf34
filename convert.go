package xeui

import "fmt"

// maxUint48 是 48 位无符号整数的上界，即广播地址的整数值。
const maxUint48 = 1<<48 - 1

// Uint64 返回地址的无符号整数值，首字节为最高有效字节。
//
// 取值范围为 [0, 2^48-1]，uint64 足以容纳。与 [FromUint64] 互逆。
func (a Addr) Uint64() uint64 {
	var v uint64
	for _, b := range a.bytes {
		v = v<<8 | uint64(b)
	}
	return v
}

// FromUint64 由无符号整数构造地址，首字节取最高有效字节。
//
// v 超出 48 位范围时返回 [ErrOverflow]。与 [Addr.Uint64] 互逆。
func FromUint64(v uint64) (Addr, error) {
	if v > maxUint48 {
		return Addr{}, fmt.Errorf("%w: %#x exceeds 48 bits", ErrOverflow, v)
	}
	var addr Addr
	for i := 5; i >= 0; i-- {
		addr.bytes[i] = byte(v)
		v >>= 8
	}
	return addr, nil
}

// BinaryString 返回 48 个字符的二进制展开，首字节在最左侧，
// 每个字节内高位在前。
//
// 例如 a0:b1:c2:d3:e4:f5 返回
// "101000001011000111000010110100111110010011110101"。
// 下标 0 对应整个地址的最高位，下标 47 对应最低位；首字节的
// I/G 位与 U/L 位分别位于下标 7 与下标 6。
func (a Addr) BinaryString() string {
	var buf [48]byte
	for i, x := range a.bytes {
		for bit := 0; bit < 8; bit++ {
			buf[i*8+bit] = '0' + (x>>(7-bit))&1
		}
	}
	return string(buf[:])
}

// Fragments 将地址拆为前 24 位与后 24 位两段裸十六进制小写，
// 各 6 个字符，拼接即为 [FormatBare] 形式。
//
// 对 EUI（见 [Addr.HasOUI]）前段即 OUI、后段为厂商自配的扩展
// 标识符；对 ELI（见 [Addr.HasCID]）前段即 CID。对其余地址，
// 两段仅是机械切分，IEEE 未赋予语义。
func (a Addr) Fragments() (first, second string) {
	s := formatBare(a.bytes, hexLower)
	return s[:6], s[6:]
}
