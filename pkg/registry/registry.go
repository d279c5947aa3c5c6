// Package registry resolves species names to molecular data files.
//
// A Registry is built explicitly by the caller and passed to whatever needs
// it; there is no package-level registry.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/TencentBlueKing/gopkg/collection/set"
	"github.com/pkg/errors"
)

// DataFileExt 分子数据文件扩展名
const DataFileExt = ".dat"

// UnknownSpeciesError 注册表中没有该物种
type UnknownSpeciesError struct {
	Name      string
	Available []string
}

// Error ...
func (e *UnknownSpeciesError) Error() string {
	quoted := make([]string, len(e.Available))
	for i, name := range e.Available {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}
	return fmt.Sprintf("molecular data for '%s' is not available, try one of the following: %s",
		e.Name, strings.Join(quoted, ", "))
}

// Registry 已知物种及其数据文件所在目录
type Registry struct {
	dir     string
	species *set.StringSet
}

// New 扫描 dir 下的 *.dat 文件，文件名（去掉扩展名）即物种名
func New(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "scan molecular data dir %s", dir)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != DataFileExt {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), DataFileExt))
	}
	return NewFromNames(dir, names), nil
}

// NewFromNames 使用给定的物种列表构建注册表，不检查文件是否存在
func NewFromNames(dir string, names []string) *Registry {
	species := set.NewStringSet()
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			species.Add(name)
		}
	}
	return &Registry{dir: dir, species: species}
}

// Dir 数据文件目录
func (r *Registry) Dir() string {
	return r.dir
}

// Has 物种是否已知
func (r *Registry) Has(name string) bool {
	return r.species.Has(name)
}

// Names 全部已知物种，按名称排序
func (r *Registry) Names() []string {
	names := r.species.ToSlice()
	sort.Strings(names)
	return names
}

// Size ...
func (r *Registry) Size() int {
	return r.species.Size()
}

// Resolve 返回物种对应的数据文件路径
func (r *Registry) Resolve(name string) (string, error) {
	if !r.Has(name) {
		return "", &UnknownSpeciesError{Name: name, Available: r.Names()}
	}
	return filepath.Join(r.dir, name+DataFileExt), nil
}
