// Code generated by hand. DO NOT EDIT.

package a

func generated(n int) {
	for n > 0 {
	}
}
