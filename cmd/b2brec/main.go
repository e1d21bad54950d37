package main

import (
	b2brec "github.com/JiangXinHai/B2b-RecAndDec/src"
)

func main() {
	b2brec.B2bRecMain()
}
