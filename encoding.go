package xeui

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]。
//
// 输出冒号分隔的小写形式，与 [Addr.String] 一致。全零地址照常
// 输出 "00:00:00:00:00:00"，不做特殊处理。
func (a Addr) MarshalText() ([]byte, error) {
	return marshalColonBytes(a.bytes), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
//
// 空输入解析为全零地址，其余输入交给 [Parse]，支持全部四种写法。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*a = Addr{}
		return nil
	}
	addr, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// MarshalJSON 实现 [json.Marshaler]。
//
// 输出 JSON 字符串，如 "a0:b1:c2:d3:e4:f5"。
func (a Addr) MarshalJSON() ([]byte, error) {
	// 17 字符地址加两个引号，一次分配到位。
	buf := make([]byte, 0, 19)
	buf = append(buf, '"')
	buf = append(buf, marshalColonBytes(a.bytes)...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
//
// JSON null 与空字符串均解析为全零地址，与 [time.Time] 等标准库
// 类型对 null 的宽容处理一致。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		*a = Addr{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return a.UnmarshalText([]byte(s))
}

// MarshalBinary 实现 [encoding.BinaryMarshaler]。
//
// 输出 6 字节网络序原始字节。
func (a Addr) MarshalBinary() ([]byte, error) {
	b := make([]byte, 6)
	copy(b, a.bytes[:])
	return b, nil
}

// UnmarshalBinary 实现 [encoding.BinaryUnmarshaler]。
//
// 仅接受恰好 6 字节的输入。
func (a *Addr) UnmarshalBinary(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(data) != 6 {
		return fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(data))
	}
	copy(a.bytes[:], data)
	return nil
}

// Value 实现 [database/sql/driver.Valuer]。
//
// 以冒号分隔的小写字符串写库，任何地址值（含全零）均可入库。
func (a Addr) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan 实现 [database/sql.Scanner]。
//
// 接受的列类型：
//   - NULL：解析为全零地址。需要区分 NULL 与全零地址的业务请
//     改用 *Addr 或 sql.Null[Addr] 包装；
//   - 字符串：按 [Parse] 的四种写法解析，空串为全零地址；
//   - 字节串：恰好 6 字节按原始二进制处理（对应 BINARY(6) 列），
//     其余长度按文本解析。
func (a *Addr) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*a = Addr{}
		return nil
	case string:
		return a.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == 6 {
			return a.UnmarshalBinary(v)
		}
		return a.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidAddress, src)
	}
}
