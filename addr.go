package xeui

import "net"

// Addr 表示一个 48 位 MAC 地址（IEEE EUI-48）。
//
// Addr 是值类型，可比较、可作为 map 键，零值为全零地址
// 00:00:00:00:00:00。与 [net.HardwareAddr] 不同，Addr 不分配堆内存，
// 也不可变，复制即快照。
//
// 设计决策：内部采用 [6]byte 数组而非切片，理由：
//  1. 可比较性：数组支持 == 与 map 键，切片不支持；
//  2. 零分配：数组内联在结构体中，避免堆逃逸；
//  3. 不可变性：方法全部使用值接收者，调用方无法篡改内部状态。
//
// 48 位空间内全部 2^48 个取值均为合法地址，包括全零与全一
// （广播地址）。Addr 上不存在"无效值"，判定输入合法性的工作
// 全部由 [Parse] 一族构造函数完成。
type Addr struct {
	bytes [6]byte
}

// AddrFrom6 由 6 字节数组构造地址。
//
// 任意字节组合均为合法地址，因此不返回错误。需要从切片构造时
// 使用 [ParseBytes]。
func AddrFrom6(b [6]byte) Addr {
	return Addr{bytes: b}
}

// Bytes 返回地址的 6 字节数组副本。
//
// 返回值是副本，修改它不影响原地址。
func (a Addr) Bytes() [6]byte {
	return a.bytes
}

// HardwareAddr 转换为标准库的 [net.HardwareAddr] 类型。
//
// 返回新分配的切片，与内部存储相互独立。
func (a Addr) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, 6)
	copy(hw, a.bytes[:])
	return hw
}

// Compare 按字节序比较两个地址，返回 -1、0 或 1。
//
// 比较顺序与地址的无符号整数值一致，可直接用于排序：
//
//	slices.SortFunc(addrs, xeui.Addr.Compare)
func (a Addr) Compare(b Addr) int {
	for i := range 6 {
		switch {
		case a.bytes[i] < b.bytes[i]:
			return -1
		case a.bytes[i] > b.bytes[i]:
			return 1
		}
	}
	return 0
}

// Next 返回按整数值递增 1 的下一个地址。
//
// 若当前已是最大地址 ff:ff:ff:ff:ff:ff，返回 [ErrOverflow]。
func (a Addr) Next() (Addr, error) {
	if a == Broadcast() {
		return Addr{}, ErrOverflow
	}
	next := a
	for i := 5; i >= 0; i-- {
		next.bytes[i]++
		if next.bytes[i] != 0 {
			break // 无进位，结束
		}
	}
	return next, nil
}

// Prev 返回按整数值递减 1 的上一个地址。
//
// 若当前已是最小地址 00:00:00:00:00:00，返回 [ErrUnderflow]。
func (a Addr) Prev() (Addr, error) {
	if a == Zero() {
		return Addr{}, ErrUnderflow
	}
	prev := a
	for i := 5; i >= 0; i-- {
		prev.bytes[i]--
		if prev.bytes[i] != 0xFF {
			break // 无借位，结束
		}
	}
	return prev, nil
}
