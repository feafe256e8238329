// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package values

import (
	"fmt"
	"strconv"
	"strings"
)

// Sprint returns a pretty-printed version of value v.
func Sprint(v T) string {
	switch v := v.(type) {
	case bottom:
		return "bottom"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return fmt.Sprintf("%q", v)
	case Seq:
		elems := make([]string, v.Len())
		for i := range elems {
			elems[i] = Sprint(v.At(i))
		}
		return fmt.Sprintf("[%s]", strings.Join(elems, ", "))
	}
	return fmt.Sprintf("foreign(%T)", v)
}
