package xeui

// Kind 表示地址首字节低位比特所划定的标识符类别。
//
// IEEE 802c 定义的 SLAP 依据首字节的低位比特把地址空间划分为
// 若干象限，本包仅命名其中两类：
//
//   - [KindUnique]：首字节最低两位（I/G、U/L）均为 0，地址由
//     IEEE 统一分配，前 24 位是注册的 OUI；
//   - [KindLocal]：首字节最低四位为 1010，即 SLAP 的 ELI 象限，
//     前 24 位是注册的 CID；
//   - 其余一律归入 [KindUnknown]，包括组播、广播以及未注册的
//     本地管理地址。
type Kind uint8

const (
	// KindUnknown 表示地址不属于 EUI 与 ELI 两类。
	KindUnknown Kind = iota
	// KindUnique 表示全局唯一的 EUI，前 24 位为 OUI。
	KindUnique
	// KindLocal 表示本地注册的 ELI，前 24 位为 CID。
	KindLocal
)

// String 返回类别的小写名称："unique"、"local" 或 "unknown"。
func (k Kind) String() string {
	switch k {
	case KindUnique:
		return "unique"
	case KindLocal:
		return "local"
	default:
		return "unknown"
	}
}

// Kind 返回地址所属的标识符类别。
//
// 设计决策：先按低 2 位判 EUI，再按低 4 位判 ELI，两个掩码宽度
// 不同且都不可更改：把 ELI 放宽到低 2 位会把全部本地管理单播
// 误收为 ELI，把 EUI 收窄到低 4 位则会漏掉高两位非零的合法 EUI。
func (a Addr) Kind() Kind {
	switch {
	case a.bytes[0]&0x03 == 0x00:
		return KindUnique
	case a.bytes[0]&0x0F == 0x0A:
		return KindLocal
	default:
		return KindUnknown
	}
}

// HasOUI 报告地址前 24 位是否为 IEEE 注册的 OUI。
// 等价于 Kind() == [KindUnique]。
func (a Addr) HasOUI() bool {
	return a.Kind() == KindUnique
}

// HasCID 报告地址前 24 位是否为 IEEE 注册的 CID。
// 等价于 Kind() == [KindLocal]。
func (a Addr) HasCID() bool {
	return a.Kind() == KindLocal
}

// IsBroadcast 报告地址是否为广播地址 ff:ff:ff:ff:ff:ff。
func (a Addr) IsBroadcast() bool {
	return a == Broadcast()
}

// IsMulticast 报告地址是否为组播地址，即首字节 I/G 位为 1。
//
// 广播地址是一种特殊的组播地址，同样返回 true。
func (a Addr) IsMulticast() bool {
	return a.bytes[0]&0x01 == 0x01
}

// IsUnicast 报告地址是否为单播地址，即首字节 I/G 位为 0。
//
// 与 [Addr.IsMulticast] 恰好互补，任何地址二者必居其一。
func (a Addr) IsUnicast() bool {
	return !a.IsMulticast()
}

// IsUAA 报告地址是否为全局管理的单播地址
// （universally administered address），即 I/G 位与 U/L 位均为 0。
func (a Addr) IsUAA() bool {
	return a.IsUnicast() && a.bytes[0]&0x02 == 0x00
}

// IsLAA 报告地址是否为本地管理的单播地址
// （locally administered address），即 I/G 位为 0 且 U/L 位为 1。
//
// 组播地址既不是 UAA 也不是 LAA：管理归属仅对单播地址有意义。
func (a Addr) IsLAA() bool {
	return a.IsUnicast() && a.bytes[0]&0x02 == 0x02
}

// Classification 汇总一个地址的全部分类判定结果。
//
// 设计决策：采用扁平布尔字段而非位标志，直接对应各个 Is/Has
// 方法，可读性优先；该结构只在分类时临时构造，不常驻内存，
// 字段宽度不是瓶颈。
type Classification struct {
	// Kind 为标识符类别，见 [Addr.Kind]。
	Kind Kind
	// HasOUI 表示前 24 位为 IEEE 注册的 OUI。
	HasOUI bool
	// HasCID 表示前 24 位为 IEEE 注册的 CID。
	HasCID bool
	// IsBroadcast 表示广播地址。
	IsBroadcast bool
	// IsMulticast 表示组播地址（含广播）。
	IsMulticast bool
	// IsUnicast 表示单播地址。
	IsUnicast bool
	// IsUAA 表示全局管理的单播地址。
	IsUAA bool
	// IsLAA 表示本地管理的单播地址。
	IsLAA bool
}

// Classify 一次性求出地址的全部分类属性。
//
// 各字段与同名方法逐一对应；需要单项判定时直接调用对应方法
// 即可，无需构造整个结构。
func (a Addr) Classify() Classification {
	return Classification{
		Kind:        a.Kind(),
		HasOUI:      a.HasOUI(),
		HasCID:      a.HasCID(),
		IsBroadcast: a.IsBroadcast(),
		IsMulticast: a.IsMulticast(),
		IsUnicast:   a.IsUnicast(),
		IsUAA:       a.IsUAA(),
		IsLAA:       a.IsLAA(),
	}
}

// String 返回分类的单词描述，按特异性从高到低取第一个命中项：
// "broadcast"、"multicast"、"laa"、"uaa"。
func (c Classification) String() string {
	switch {
	case c.IsBroadcast:
		return "broadcast"
	case c.IsMulticast:
		return "multicast"
	case c.IsLAA:
		return "laa"
	case c.IsUAA:
		return "uaa"
	default:
		// 正常构造的 Classification 不会走到这里：单播与组播
		// 互补，单播又必为 UAA 或 LAA 之一。仅为零值兜底。
		return "unknown"
	}
}
