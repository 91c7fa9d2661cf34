package xeui

import (
	"fmt"

	"github.com/google/uuid"
)

// FromUUID 提取时间型 UUID 末 6 字节携带的节点标识。
//
// RFC 9562 规定版本 1 与版本 2 的 UUID 以生成机器的 MAC 地址
// 作为 node 字段；其余版本的同一位置是随机或散列字节，提取
// 没有意义，返回 [ErrNoNode]。
//
//	u := uuid.MustParse("00000000-0000-1000-8000-a0b1c2d3e4f5")
//	addr, _ := xeui.FromUUID(u) // a0:b1:c2:d3:e4:f5
//
// 注意：出于隐私考虑，许多 UUID 实现会用随机数代替真实 MAC
// 生成 v1，提取结果是否对应真实网卡由调用方甄别。
func FromUUID(u uuid.UUID) (Addr, error) {
	if v := u.Version(); v != 1 && v != 2 {
		return Addr{}, fmt.Errorf("%w: version %d", ErrNoNode, v)
	}
	var addr Addr
	copy(addr.bytes[:], u.NodeID())
	return addr, nil
}
