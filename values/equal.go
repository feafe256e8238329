// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package values

// Equal compares values v and w structurally. The comparison is
// three-valued: it returns true, false, or Bottom. Two atoms of the
// same kind are equal iff their native values are equal; atoms of
// different kinds (and atoms compared against sequences) are
// unequal; two sequences are equal iff they have the same length and
// pairwise-equal elements. A Bottom encountered anywhere in the
// recursive comparison yields Bottom, not false.
func Equal(v, w T) T {
	if IsBottom(v) || IsBottom(w) {
		return Bottom
	}
	switch v := v.(type) {
	case bool:
		w, ok := w.(bool)
		return ok && v == w
	case int:
		w, ok := w.(int)
		return ok && v == w
	case float64:
		w, ok := w.(float64)
		return ok && v == w
	case string:
		w, ok := w.(string)
		return ok && v == w
	case Seq:
		w, ok := w.(Seq)
		if !ok {
			return false
		}
		if v.Len() != w.Len() {
			return false
		}
		for i := 0; i < v.Len(); i++ {
			eq := Equal(v.At(i), w.At(i))
			if IsBottom(eq) {
				return Bottom
			}
			if !eq.(bool) {
				return false
			}
		}
		return true
	}
	return Bottom
}
