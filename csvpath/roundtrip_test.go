package csvpath_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvpaths/csvpath"
	"csvpaths/jsonvalue"
)

func TestRoundTripFlatRecords(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"items": []any{
			map[string]any{"id": 1, "name": "a"},
			map[string]any{"id": 2, "name": "b"},
		},
	}

	text, err := csvpath.Encode(input)
	require.NoError(t, err)

	decoded, err := csvpath.Decode(text)
	require.NoError(t, err)

	items, ok := decoded.Get("items")
	require.True(t, ok)
	require.Len(t, items, 2)

	first := items.([]any)[0].(*jsonvalue.Object)
	id, _ := first.Get("id")
	name, _ := first.Get("name")
	assert.InDelta(t, 1.0, id, 0)
	assert.Equal(t, "a", name)

	assert.True(t, jsonvalue.Equal(input, decoded), spew.Sdump(decoded))
}

func TestRoundTripStableAfterDecode(t *testing.T) {
	t.Parallel()

	documents := map[string]string{
		"join": strings.Join([]string{
			"users[1],id,name,active",
			`1,"Doe, Jane",true`,
			"2,Bob,false",
			"",
			"users[1].orders[1],user_id,item,price",
			"1,Widget,9.99",
			"2,Gadget,null",
			"1,Gizmo,3",
		}, "\n"),
		"several roots": strings.Join([]string{
			"teams[1],id,label",
			`t1,"say ""hi"""`,
			"",
			"teams[1].members[1],team_id,who,lead",
			"t1,Ann,true",
			"",
			"",
			"tags,name",
			"red",
			"blue",
		}, "\n"),
		"numbers beyond exponent bounds": strings.Join([]string{
			"items[1],id,n",
			"1,1000000000000000000000",
			"2,0.0000001",
		}, "\n"),
		"items without fields": strings.Join([]string{
			"tags[1]",
			"x",
			"y",
		}, "\n"),
	}

	for name, doc := range documents {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			first, err := csvpath.Decode(doc)
			require.NoError(t, err)

			text, err := csvpath.Encode(first)
			require.NoError(t, err)

			second, err := csvpath.Decode(text)
			require.NoError(t, err)

			if !jsonvalue.Equal(first, second) {
				t.Logf("re-encoded text:\n%s\nfirst: %s\nsecond: %s", text, spew.Sdump(first), spew.Sdump(second))
			}

			assert.True(t, jsonvalue.Equal(first, second))
		})
	}
}

func ExampleDecode() {
	doc := strings.Join([]string{
		"users[1],id,name",
		"1,Alice",
		"",
		"users[1].orders[1],user_id,item",
		"1,Widget",
	}, "\n")

	v, err := csvpath.Decode(doc)
	if err != nil {
		fmt.Println(err)
		return
	}

	out, _ := jsonvalue.MarshalIndent(v, "")
	fmt.Println(string(out))
	// Output:
	// {"users":[{"id":1,"name":"Alice","orders":[{"item":"Widget"}]}]}
}

func ExampleEncode() {
	v, _ := jsonvalue.Parse([]byte(`{"users":[{"id":1,"name":"Alice","orders":[{"item":"Widget"}]}]}`))

	text, err := csvpath.Encode(v)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(text)
	// Output:
	// users[1],id,name
	// 1,Alice
	//
	// users[1].orders[1],users_id,item
	// 1,Widget
}
