package xeui

import "errors"

// 错误定义。
//
// 所有错误均为包级哨兵错误，调用方应使用 [errors.Is] 进行匹配：
//
//	addr, err := xeui.Parse(input)
//	if errors.Is(err, xeui.ErrInvalidAddress) {
//	    // 输入不是合法的 MAC 地址
//	}
//
// 设计决策：[Parse] 对所有非法输入统一返回 [ErrInvalidAddress]，
// 不区分"长度错误"、"分隔符错误"、"非法字符"等具体原因。
// MAC 地址极短，逐类报错对调用方没有处置价值，反而使错误处理
// 分支膨胀；需要定位原因时肉眼比对输入即可。
var (
	// ErrInvalidAddress 表示输入无法按任何受支持的写法解析为 MAC 地址。
	// 合法输入必须恰好含 12 个十六进制数字，可选统一使用冒号、
	// 连字符或点号分隔。
	ErrInvalidAddress = errors.New("xeui: invalid MAC address: want 12 hexadecimal digits")

	// ErrInvalidLength 表示字节切片长度不是 6。
	ErrInvalidLength = errors.New("xeui: invalid length")

	// ErrOverflow 表示运算结果超出 48 位地址空间上界。
	ErrOverflow = errors.New("xeui: address overflow")

	// ErrUnderflow 表示运算结果低于 48 位地址空间下界。
	ErrUnderflow = errors.New("xeui: address underflow")

	// ErrNilReceiver 表示在 nil 指针上调用了反序列化方法。
	ErrNilReceiver = errors.New("xeui: nil receiver")

	// ErrNoNode 表示 UUID 的版本不携带节点标识，无法提取 MAC 地址。
	ErrNoNode = errors.New("xeui: uuid version carries no node identifier")
)
