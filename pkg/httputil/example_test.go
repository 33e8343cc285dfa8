package httputil_test

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/moharchaudhuri17/tidytuesday/pkg/httputil"
)

func ExampleCache() {
	dir := filepath.Join(os.TempDir(), "tidyviz-example")
	defer os.RemoveAll(dir)

	cache, err := httputil.NewCache(dir, 24*time.Hour)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	// A fetched dataset goes in under its namespaced key.
	raw := "year,title,rating\n1997,Titanic,3\n"
	if err := cache.Set("bechdel:raw", raw); err != nil {
		fmt.Println("Error:", err)
		return
	}

	// The next run reads it back instead of hitting the network.
	var cached string
	if ok, err := cache.Get("bechdel:raw", &cached); ok && err == nil {
		fmt.Print(cached)
	}
	// Output:
	// year,title,rating
	// 1997,Titanic,3
}

func ExampleCache_miss() {
	dir := filepath.Join(os.TempDir(), "tidyviz-example-miss")
	defer os.RemoveAll(dir)

	cache, _ := httputil.NewCache(dir, time.Hour)

	var raw string
	ok, err := cache.Get("postoffices:raw", &raw)
	fmt.Println("Found:", ok)
	fmt.Println("Error:", err)
	// Output:
	// Found: false
	// Error: <nil>
}
