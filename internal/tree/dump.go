package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders v as an indented debug tree, in the spirit of the teacher's
// registry-key printer: one line per scalar, braces for aggregates. It is a
// diagnostic aid, not an interchange format — use internal/codec for that.
func (v *Value) Dump() string {
	var sb strings.Builder
	v.dump(&sb, 0)
	return sb.String()
}

func (v *Value) dump(sb *strings.Builder, indent int) {
	pad := strings.Repeat("  ", indent)
	switch {
	case v.IsNull():
		sb.WriteString("null")
	case v.IsBool():
		sb.WriteString(strconv.FormatBool(v.b))
	case v.IsInt():
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case v.IsFloat():
		sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case v.IsString():
		sb.WriteString(strconv.Quote(string(v.stringBytes())))
	case v.IsArray():
		if v.arr.size == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		for i := 0; i < v.arr.size; i++ {
			sb.WriteString(pad + "  ")
			v.arr.items[i].dump(sb, indent+1)
			sb.WriteString("\n")
		}
		sb.WriteString(pad + "]")
	case v.IsMap():
		if v.mp.size == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{\n")
		for i := 0; i < v.mp.size; i++ {
			p := v.mp.pairs[i]
			sb.WriteString(fmt.Sprintf("%s  %s: ", pad, strconv.Quote(p.key.String())))
			p.val.dump(sb, indent+1)
			sb.WriteString("\n")
		}
		sb.WriteString(pad + "}")
	}
}
