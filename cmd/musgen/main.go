package main

import (
	"os"
	"reflect"
	"strings"

	"github.com/forkful/recipedex/core"
	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// If we're in the core subpackage, cd up to project root
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/forkful/recipedex/core"),
	)
	if err != nil {
		panic(err)
	}

	// Unix micro timestamps
	opts := typeops.WithTimeUnit(typeops.Micro)
	err = g.AddStruct(reflect.TypeFor[core.Recipe](),
		structops.WithField(), // Id
		structops.WithField(), // Title
		structops.WithField(), // Description
		structops.WithField(), // Category
		structops.WithField(), // Cuisine
		structops.WithField(), // Summary
		structops.WithField(), // Notes
		structops.WithField(), // Ingredients
		structops.WithField(), // Instructions
		structops.WithField(), // Tags
		structops.WithField(), // ImageURL
		structops.WithField(), // SourceURL
		structops.WithField(), // Servings
		structops.WithField(), // PrepTime
		structops.WithField(), // CookTime
		structops.WithField(opts), // InsertedAt
		structops.WithField(opts), // UpdatedAt
		structops.WithField()) // Vector
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile("./core/records_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}
