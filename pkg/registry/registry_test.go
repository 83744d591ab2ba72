package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/docrender/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testItem is a simple type for testing
type testItem struct {
	ID   int
	Name string
}

func TestRegister(t *testing.T) {
	reg := New[testItem]()

	t.Run("register valid item", func(t *testing.T) {
		require.NoError(t, reg.Register("item1", testItem{ID: 1, Name: "test"}))
		assert.Equal(t, 1, reg.Count())
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", testItem{ID: 2})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("item1", testItem{ID: 3})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	})
}

func TestSetReplaces(t *testing.T) {
	reg := New[string]()
	require.NoError(t, reg.Register("bold", "upper"))
	require.NoError(t, reg.Set("bold", "escape"))

	got, err := reg.Get("bold")
	require.NoError(t, err)
	assert.Equal(t, "escape", got)
	assert.True(t, errors.IsErrorCode(reg.Set("", "x"), errors.ErrInvalidInput))
}

func TestGetAndLookup(t *testing.T) {
	reg := New[testItem]()
	MustRegister(reg, "present", testItem{ID: 7})

	item, err := reg.Get("present")
	require.NoError(t, err)
	assert.Equal(t, 7, item.ID)

	_, err = reg.Get("missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	_, ok := reg.Lookup("missing")
	assert.False(t, ok)
}

func TestRemoveListHasClear(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "c", 3)
	MustRegister(reg, "a", 1)
	MustRegister(reg, "b", 2)

	assert.Equal(t, []string{"a", "b", "c"}, reg.List())
	assert.True(t, reg.Has("b"))

	require.NoError(t, reg.Remove("b"))
	assert.False(t, reg.Has("b"))
	assert.True(t, errors.IsErrorCode(reg.Remove("b"), errors.ErrNotFound))

	reg.Clear()
	assert.Equal(t, 0, reg.Count())
}

func TestFreeze(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "one", 1)
	reg.Freeze()

	assert.True(t, reg.Frozen())
	assert.True(t, errors.IsErrorCode(reg.Register("two", 2), errors.ErrFrozen))
	assert.True(t, errors.IsErrorCode(reg.Set("one", 9), errors.ErrFrozen))
	assert.True(t, errors.IsErrorCode(reg.Remove("one"), errors.ErrFrozen))

	reg.Clear()
	assert.Equal(t, 1, reg.Count(), "clear must not touch a frozen registry")

	clone := reg.Clone()
	assert.False(t, clone.Frozen())
	require.NoError(t, clone.Set("one", 9))
	assert.Equal(t, 1, MustGet(reg, "one"), "clone must not share storage")
}

func TestBuildLayersInOrder(t *testing.T) {
	base := Layer[string]{Name: "ascii", Entries: map[string]string{
		"bold":  "upper",
		"title": "center",
	}}
	backend := Layer[string]{Name: "ansi", Entries: map[string]string{
		"bold": "escape",
	}}
	domain := Layer[string]{Name: "monster", Entries: map[string]string{
		"Monster": "link",
	}}

	reg, err := Build(base, backend, domain)
	require.NoError(t, err)

	assert.True(t, reg.Frozen())
	assert.Equal(t, []string{"Monster", "bold", "title"}, reg.List())
	assert.Equal(t, "escape", MustGet(reg, "bold"))
	assert.Equal(t, "center", MustGet(reg, "title"))
}

func TestBuildRejectsEmptyName(t *testing.T) {
	_, err := Build(Layer[string]{Name: "broken", Entries: map[string]string{"": "x"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Panics(t, func() {
		MustBuild(Layer[string]{Name: "broken", Entries: map[string]string{"": "x"}})
	})
}

func TestExtendLeavesBaseUntouched(t *testing.T) {
	base := MustBuild(Layer[string]{Name: "ascii", Entries: map[string]string{"bold": "upper"}})

	ext, err := Extend(base, Layer[string]{Name: "html", Entries: map[string]string{"bold": "strong"}})
	require.NoError(t, err)

	assert.Equal(t, "upper", MustGet(base, "bold"))
	assert.Equal(t, "strong", MustGet(ext, "bold"))
}

func TestConcurrency(t *testing.T) {
	reg := New[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("item%d", i)
			_ = reg.Register(name, i)
			_, _ = reg.Get(name)
			_ = reg.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, reg.Count())
}

func TestMustHelpersPanic(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "x", 1)

	assert.Panics(t, func() { MustRegister(reg, "x", 2) })
	assert.Panics(t, func() { MustGet(reg, "missing") })
}
