package deep_test

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-nested-utils/deep"
)

func ExampleGet() {
	root := map[string]any{
		"users": []any{
			map[string]any{"name": "Alice"},
			map[string]any{"name": "Bob"},
		},
	}
	name, _ := deep.Get(root, "users", "1", "name")
	fmt.Println(name)
	// Output: Bob
}

func ExampleSet() {
	root := map[string]any{}
	_ = deep.Set(root, 8080, "server", "port")
	port, _ := deep.Get(root, "server", "port")
	fmt.Println(port)
	// Output: 8080
}

func ExampleSetDefault() {
	root := map[string]any{"retries": map[string]any{"max": 5}}
	_ = deep.SetDefault(root, 3, "retries", "max")     // present: kept
	_ = deep.SetDefault(root, 30, "retries", "delay")  // absent: written
	maxV, _ := deep.Get(root, "retries", "max")
	delay, _ := deep.Get(root, "retries", "delay")
	fmt.Println(maxV, delay)
	// Output: 5 30
}

func ExampleSetDefaultPad() {
	root := map[string]any{"slots": []any{}}
	_ = deep.SetDefaultPad(root, "x", "slots", "3")
	fmt.Println(root["slots"])
	// Output: [<nil> <nil> <nil> x]
}

func ExampleDelete() {
	root := map[string]any{"a": map[string]any{"b": 1}}
	_ = deep.Delete(root, "a", "b")
	_, err := deep.Get(root, "a", "b")
	fmt.Println(errors.Is(err, deep.ErrKeyNotFound))
	// Output: true
}
