package sqltypes

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(ColumnType{Name: "json", SQLType: "json"}))

	ct, ok := r.Lookup("json")
	require.True(t, ok)
	assert.Equal(t, "json", ct.SQLType)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(ColumnType{Name: "json", SQLType: "json"}))
	assert.Error(t, r.Register(ColumnType{Name: "json", SQLType: "jsonb"}))

	over := NewRegistry(WithAllowOverride(true))
	require.NoError(t, over.Register(ColumnType{Name: "json", SQLType: "json"}))
	require.NoError(t, over.Register(ColumnType{Name: "json", SQLType: "jsonb"}))
	ct, _ := over.Lookup("json")
	assert.Equal(t, "jsonb", ct.SQLType)
}

func TestRegistry_NamelessRejected(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(ColumnType{SQLType: "json"}))
}

func TestRegistry_DialectFallback(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(ColumnType{Name: "json", SQLType: "json"}))
	require.NoError(t, r.RegisterFor("postgres", ColumnType{Name: "json", SQLType: "jsonb"}))

	ct, ok := r.LookupFor("postgres", "json")
	require.True(t, ok)
	assert.Equal(t, "jsonb", ct.SQLType)

	// Unknown dialect falls back to the global registration.
	ct, ok = r.LookupFor("sqlite", "json")
	require.True(t, ok)
	assert.Equal(t, "json", ct.SQLType)

	ddl, ok := r.DDL("postgres", "json")
	require.True(t, ok)
	assert.Equal(t, "jsonb", ddl)
}

func TestRegistry_CaseInsensitiveLookup(t *testing.T) {
	r := NewRegistry(WithCaseInsensitiveLookup(true))
	require.NoError(t, r.Register(ColumnType{Name: "JSON", SQLType: "json"}))

	_, ok := r.Lookup("json")
	assert.True(t, ok)
	_, ok = r.Lookup("Json")
	assert.True(t, ok)
}

func TestRegistry_LookupGoType(t *testing.T) {
	type dummy struct{}
	r := NewRegistry()
	require.NoError(t, r.Register(ColumnType{
		Name:    "dummy",
		SQLType: "text",
		GoType:  reflect.TypeOf(dummy{}),
	}))

	ct, ok := r.LookupGoType(reflect.TypeOf(dummy{}))
	require.True(t, ok)
	assert.Equal(t, "dummy", ct.Name)

	_, ok = r.LookupGoType(reflect.TypeOf(0))
	assert.False(t, ok)
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(ColumnType{Name: "b", SQLType: "text"}))
	require.NoError(t, r.Register(ColumnType{Name: "a", SQLType: "text"}))
	assert.Equal(t, []string{"a", "b"}, r.Names())
}

func TestRegistry_ConcurrentLookups(t *testing.T) {
	r := NewRegistry(WithAllowOverride(true))
	require.NoError(t, r.Register(ColumnType{Name: "json", SQLType: "json"}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = r.Register(ColumnType{Name: fmt.Sprintf("t%d", i), SQLType: "text"})
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := r.Lookup("json"); !ok {
					t.Error("registered type vanished during concurrent registration")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestDefaultRegistry_PackageHelpers(t *testing.T) {
	name := "helper_probe"
	require.NoError(t, RegisterColumn(ColumnType{Name: name, SQLType: "text"}))

	_, ok := LookupColumn(name)
	assert.True(t, ok)

	require.NoError(t, RegisterColumnFor("postgres", ColumnType{Name: name, SQLType: "citext"}))
	ddl, ok := ColumnDDL("postgres", name)
	require.True(t, ok)
	assert.Equal(t, "citext", ddl)

	_, ok = LookupColumnFor("mysql", name)
	assert.True(t, ok)
}
