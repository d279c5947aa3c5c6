package storage

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/hfhsieh/sparx-alpha/pkg/logging"
	"github.com/hfhsieh/sparx-alpha/pkg/molecule"
	"github.com/hfhsieh/sparx-alpha/pkg/registry"
)

// Catalog 按物种缓存已构建的分子模型
//
// 模型构建后只读，可在多个 goroutine 间共享；同一物种并发首次访问时只解析一次文件
type Catalog struct {
	registry *registry.Registry

	mu        sync.RWMutex
	molecules map[string]*molecule.Molecule
	group     singleflight.Group
}

// NewCatalog ...
func NewCatalog(reg *registry.Registry) *Catalog {
	return &Catalog{
		registry:  reg,
		molecules: map[string]*molecule.Molecule{},
	}
}

// Registry 物种注册表
func (c *Catalog) Registry() *registry.Registry {
	return c.registry
}

// Get 获取物种对应的分子模型，首次访问时从数据文件加载
func (c *Catalog) Get(name string) (*molecule.Molecule, error) {
	c.mu.RLock()
	mol, ok := c.molecules[name]
	c.mu.RUnlock()
	if ok {
		return mol, nil
	}

	v, err, _ := c.group.Do(name, func() (any, error) {
		return c.load(name)
	})
	if err != nil {
		return nil, err
	}
	return v.(*molecule.Molecule), nil
}

func (c *Catalog) load(name string) (*molecule.Molecule, error) {
	// singleflight 结束后到写入缓存前可能有其他调用进来，再检查一次
	c.mu.RLock()
	mol, ok := c.molecules[name]
	c.mu.RUnlock()
	if ok {
		return mol, nil
	}

	path, err := c.registry.Resolve(name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	mol, err = molecule.Load(path, molecule.WithName(name))
	if err != nil {
		logging.GetLoaderLogger().WithFields(logrus.Fields{
			"species": name,
			"path":    path,
			"error":   err.Error(),
		}).Error("failed to load molecule")
		return nil, err
	}

	logging.GetLoaderLogger().WithFields(logrus.Fields{
		"species":  name,
		"path":     path,
		"levels":   mol.NumLevels(),
		"lines":    mol.NumLines(),
		"partners": mol.NumPartners(),
		"latency":  time.Since(start).Milliseconds(),
	}).Info("molecule loaded")

	c.mu.Lock()
	c.molecules[name] = mol
	c.mu.Unlock()
	return mol, nil
}

// Preload 并发加载多个物种，任一失败即返回该错误
func (c *Catalog) Preload(ctx context.Context, names []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, name := range names {
		name := name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := c.Get(name); err != nil {
				return errors.Wrapf(err, "preload %s", name)
			}
			return nil
		})
	}
	return g.Wait()
}

// Loaded 已加载的物种，按名称排序
func (c *Catalog) Loaded() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.molecules))
	for name := range c.molecules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
