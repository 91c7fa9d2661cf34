package xeui

// 设计决策：Zero 与 Broadcast 以函数而非包级变量暴露。
// Addr 虽是值类型，但导出的包级变量仍可被调用方整体覆写
// （xeui.Broadcast = ...），函数返回值则每次都是新副本，
// 从根本上杜绝全局状态被污染。

// Zero 返回全零地址 00:00:00:00:00:00，即 [Addr] 的零值。
//
// 全零是合法的 48 位标识符，[Parse] 接受它，各序列化接口也会
// 原样输出它。需要把全零当作"未设置"哨兵时，由调用方自行约定，
// 配合 [Addr.IsZero] 判定。
func Zero() Addr {
	return Addr{}
}

// Broadcast 返回广播地址 ff:ff:ff:ff:ff:ff。
func Broadcast() Addr {
	return Addr{bytes: [6]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}}
}

// IsZero 报告地址是否为全零地址。
func (a Addr) IsZero() bool {
	return a == Addr{}
}

// IsSpecial 报告地址是否为保留地址，即全零或广播。
func (a Addr) IsSpecial() bool {
	return a.IsZero() || a.IsBroadcast()
}

// IsUsable 报告地址是否可分配给具体网卡使用。
//
// 保留地址（全零、广播）不可分配，其余地址均可：
//
//	if addr.IsUsable() {
//	    assignToInterface(addr)
//	}
func (a Addr) IsUsable() bool {
	return !a.IsSpecial()
}
