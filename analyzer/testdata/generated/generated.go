// Code generated by hand. DO NOT EDIT.

package generated

func loop(n int) {
	for n > 0 { // want `loop condition "n > 0" never changes inside the loop`
	}
}
