package storage

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hfhsieh/sparx-alpha/pkg/lamda"
	"github.com/hfhsieh/sparx-alpha/pkg/molecule"
	"github.com/hfhsieh/sparx-alpha/pkg/registry"
)

const fixture = "../molecule/testdata/co.dat"

// newTestCatalog 在临时目录中准备数据文件，files 为 物种名 -> 文件内容
func newTestCatalog(t *testing.T, files map[string]string) *Catalog {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+registry.DataFileExt), []byte(content), 0o644))
	}
	reg, err := registry.New(dir)
	require.NoError(t, err)
	return NewCatalog(reg)
}

func readFixture(t *testing.T) string {
	t.Helper()
	content, err := os.ReadFile(fixture)
	require.NoError(t, err)
	return string(content)
}

func TestCatalogGetCaches(t *testing.T) {
	catalog := newTestCatalog(t, map[string]string{"co": readFixture(t)})
	assert.Empty(t, catalog.Loaded())

	mol, err := catalog.Get("co")
	require.NoError(t, err)
	assert.Equal(t, "co", mol.Name())
	assert.Equal(t, "CO", mol.ChemName())
	assert.Equal(t, []string{"co"}, catalog.Loaded())

	again, err := catalog.Get("co")
	require.NoError(t, err)
	assert.Same(t, mol, again)
}

func TestCatalogGetConcurrent(t *testing.T) {
	catalog := newTestCatalog(t, map[string]string{"co": readFixture(t)})

	results := make([]*molecule.Molecule, 16)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			mol, err := catalog.Get("co")
			assert.NoError(t, err)
			results[i] = mol
		}(i)
	}
	wg.Wait()

	for _, mol := range results {
		assert.Same(t, results[0], mol)
	}
}

func TestCatalogGetUnknownSpecies(t *testing.T) {
	catalog := newTestCatalog(t, map[string]string{"co": readFixture(t)})

	_, err := catalog.Get("sio")
	var ue *registry.UnknownSpeciesError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, []string{"co"}, ue.Available)
}

func TestCatalogGetMalformedFile(t *testing.T) {
	catalog := newTestCatalog(t, map[string]string{"bad": "!MOLECULE\nBAD\n!MOLECULAR WEIGHT\n"})

	_, err := catalog.Get("bad")
	var fe *lamda.FormatError
	require.True(t, errors.As(err, &fe), "got %T: %v", err, err)
	assert.Equal(t, lamda.SectionWeight, fe.Section)
	assert.Empty(t, catalog.Loaded())
}

func TestCatalogPreload(t *testing.T) {
	content := readFixture(t)
	catalog := newTestCatalog(t, map[string]string{"co": content, "13co": content})

	require.NoError(t, catalog.Preload(context.Background(), []string{"co", "13co"}))
	assert.Equal(t, []string{"13co", "co"}, catalog.Loaded())

	err := catalog.Preload(context.Background(), []string{"co", "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preload missing")
}

func TestCatalogPreloadCanceled(t *testing.T) {
	catalog := newTestCatalog(t, map[string]string{"co": readFixture(t)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := catalog.Preload(ctx, []string{"co"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, catalog.Loaded())
}
