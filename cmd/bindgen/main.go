// Command bindgen emits the typed Wrap/Unwrap methods for every interface
// in the DOM table (dom_bindings.go at the repository root). Run it after
// editing the table in dom.go:
//
//	go run ./cmd/bindgen -out dom_bindings.go
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/dave/jennifer/jen"

	"github.com/davral/dombind"
)

func main() {
	out := flag.String("out", "dom_bindings.go", "output file")
	flag.Parse()

	names := dombind.DOMInterfaceNames()

	f := jen.NewFile("dombind")
	f.PackageComment("Code generated by bindgen. DO NOT EDIT.")

	for _, name := range names {
		f.Commentf("Wrap%s returns the engine object for a native %s.", name, name)
		f.Func().Params(jen.Id("d").Op("*").Id("DOMBinder")).
			Id("Wrap" + name).
			Params(jen.Id("h").Id("Handle")).
			Params(jen.Id("Object"), jen.Error()).
			Block(jen.Return(jen.Id("d").Dot("wrapAs").Call(jen.Lit(name), jen.Id("h"))))

		f.Commentf("Unwrap%s recovers the native %s handle, or NullHandle on type mismatch.", name, name)
		f.Func().Params(jen.Id("d").Op("*").Id("DOMBinder")).
			Id("Unwrap" + name).
			Params(jen.Id("o").Id("Object")).
			Id("Handle").
			Block(jen.Return(jen.Id("d").Dot("unwrapAs").Call(jen.Lit(name), jen.Id("o"))))
	}

	if err := f.Save(*out); err != nil {
		log.Fatalln("writing bindings:", err)
	}
	fmt.Printf("Generated %d wrap/unwrap pairs in %s\n", len(names), *out)
}
