package text_test

import (
	"context"
	"fmt"

	"github.com/walteh/lktk/pkg/text"
)

func ExampleSimpleTextReplacer_ReplaceText() {
	// Create a replacer
	replacer := text.NewSimpleTextReplacer()

	// Define some replacement rules
	rules := []text.ReplacementRule{
		{
			FromText:       "World",
			ToText:         "Universe",
			FileFilterGlob: "*.lkml",
		},
		{
			FromText: "Hello",
			ToText:   "Hi",
		},
	}

	// Apply replacements
	result, err := replacer.ReplaceText(context.Background(), "greeting.lkml", "Hello World!", rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Print results
	fmt.Printf("Original: %s\n", result.OriginalContent)
	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Original: Hello World!
	// Modified: Hi Universe!
	// Changes: 2
	// Was Modified: true
}

func ExampleNormalizer_Normalize() {
	n := text.DefaultNormalizer()

	fmt.Printf("%q\n", n.Normalize("view: a {}   \r\n\r\n\r\n\r\nview: b {}"))

	// Output:
	// "view: a {}\n\nview: b {}\n"
}
