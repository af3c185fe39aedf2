package search_test

import (
	"fmt"

	"github.com/jonwraymond/vibematch/catalog"
	"github.com/jonwraymond/vibematch/search"
)

func ExampleBM25Searcher_Search() {
	searcher := search.NewBM25Searcher(search.BM25Config{})
	defer searcher.Close()

	hits, err := searcher.Search("saree", 3, catalog.Default().Documents())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, h := range hits {
		fmt.Println(h.ID)
	}
	// Output:
	// Silk Saree
}
