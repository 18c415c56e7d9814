// Package xtype 定义数据建模引擎中值类型编解码器的公共契约。
//
// 引擎把每种值类型视为可插拔的编解码器，统一遵循固定的生命周期：
// Store → (Compare | Print | Hash | Duplicate)* → Free，见 [Codec]。
// xtype 提供编解码器依赖的外部协作方：
//
//   - 类型元数据 [Type]：长度约束 [Length]、模式约束 [Pattern]、格式提示 [Hints] 校验
//   - 值格式 [Format]：文本形式与紧凑二进制形式
//   - 输入 [Input] 与输出 [Output]：描述缓冲区所有权
//   - 错误报告 [Error]：按 [Kind] 分类，支持 errors.Is 判断
//   - 类型定义加载 [LoadTypes]：基于 koanf 解析 YAML/JSON
//
// # 校验顺序
//
// [Type.Validate] 依次执行：格式提示 → 长度（按 UTF-8 字符数）→ 模式。
// 任一失败立即返回，后续约束不再检查。
//
// # 类型定义
//
//	types:
//	  ipv4-address:
//	    length: "7..64"
//	    patterns:
//	      - regexp: '[0-9.]+(%[A-Za-z0-9]*)?'
//	        error-message: "bad address"
//	        error-app-tag: "ipv4-format"
//
// 长度表达式沿用 YANG 语法："1..10 | 20..max"、"min..5"、"7"。
// 模式隐式锚定整串，invert-match 为 true 时要求不匹配。
//
// # 错误处理
//
//	_, err := codec.Store(typ, in)
//	if errors.Is(err, xtype.ErrLengthViolation) {
//	    // 长度不满足约束
//	}
//	var te *xtype.Error
//	if errors.As(err, &te) {
//	    fmt.Println(te.Kind, te.AppTag)
//	}
package xtype
