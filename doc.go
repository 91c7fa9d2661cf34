// Package xeui 提供 48 位 MAC 地址（IEEE EUI-48）的解析、格式化、
// 分类与序列化能力。
//
// 核心类型 [Addr] 是 6 字节定长值类型，可比较、可作 map 键、
// 零分配，定位对标 [net/netip.Addr] 之于 IP 地址：
//
//   - 解析：[Parse] 接受裸十六进制、连字符、冒号、点分四种写法，
//     另有 [ParseBytes]、[FromHardwareAddr]、[FromUint64]、
//     [FromUUID] 等构造函数；
//   - 格式化：[Addr.String] 输出规范冒号形式，[Addr.FormatString]
//     支持四种写法乘大小写共八种格式；
//   - 换算：[Addr.Uint64]、[Addr.BinaryString]、[Addr.Fragments]
//     提供整数、二进制展开、前后 24 位切分三种视图；
//   - 分类：[Addr.Kind] 判定 EUI/ELI 类别，[Addr.IsMulticast] 等
//     谓词判定传输方式与管理方式，[Addr.Classify] 一次性汇总；
//   - 序列化：实现 text/json/binary 编解码接口与 database/sql
//     的 Valuer/Scanner；
//   - 迭代：[Range] 一族基于 Go 1.23 迭代器遍历地址区间。
//
// # 快速示例
//
//	addr, err := xeui.Parse("a0-b1-c2-d3-e4-f5")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(addr)                            // a0:b1:c2:d3:e4:f5
//	fmt.Println(addr.FormatString(xeui.FormatDot)) // a0b1.c2d3.e4f5
//	fmt.Println(addr.Uint64())                   // 176685338322165
//	fmt.Println(addr.Kind())                     // unique
//
// # 设计决策
//
//   - 内部表示为 [6]byte 数组：可比较、可作 map 键、无堆分配，
//     方法全部采用值接收者，复制即快照；
//   - 仅支持 EUI-48：EUI-64、InfiniBand 等其他长度的硬件地址
//     不在范围内，[FromHardwareAddr] 对非 6 字节输入报错；
//   - 全部 2^48 个取值均合法：全零与广播照常解析、照常序列化。
//     这一点与 [net/netip.Addr]（零值无效）不同——"00:00:00:00:00:00"
//     是 IEEE 意义上真实存在的地址，不宜被类型系统没收。需要
//     哨兵语义时配合 [Addr.IsZero] 由调用方约定；
//   - 语法从严：[Parse] 不忽略空白、不接受混用分隔符，也不
//     兜底转发 [net.ParseMAC]。输入要么精确匹配四种写法之一，
//     要么统一报 [ErrInvalidAddress]；
//   - 输出统一小写：十六进制大小写不敏感，规范输出取小写，
//     大写仅在显式指定 FormatXxxUpper 时产生。
//
// # 分类规则
//
// 分类依据首字节的低位比特（也即 [Addr.BinaryString] 输出中
// 下标 4 到 7 的字符）：
//
//   - I/G 位（最低位，二进制展开下标 7）：0 为单播，1 为组播，
//     广播 ff:ff:ff:ff:ff:ff 是组播的特例；
//   - U/L 位（次低位，二进制展开下标 6）：对单播地址，0 为全局
//     管理（UAA），1 为本地管理（LAA）；
//   - 低 2 位为 00 时地址为 EUI，前 24 位是 IEEE 注册的 OUI；
//     否则低 4 位为 1010 时为 ELI，前 24 位是注册的 CID；
//     其余归入 [KindUnknown]。
//
// # 错误处理
//
// 所有错误均为包级哨兵，用 [errors.Is] 匹配。解析失败统一返回
// [ErrInvalidAddress]，不区分具体违例；其余哨兵见 errors.go。
//
// # 平台要求
//
// xeui 使用 Go 1.25+ 的 [iter.Seq] 迭代器特性。
// 最低要求 Go 1.25（与项目 go.mod 一致）。
//
// 设计决策: 迭代器索引（[RangeWithIndex]、[RangeReverseWithIndex]）和
// [Count] 使用 int 类型，与 Go 标准库 [slices.All] 保持一致。在 64 位
// 架构上 int 为 64 位，可覆盖完整的 48 位地址空间；涉及整个空间数量
// 的 [RangeCount] 返回 uint64，在 32 位架构上也不会截断。
package xeui
