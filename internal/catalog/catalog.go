package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"career-match/internal/domain"
)

//go:embed careers.yaml
var embeddedCareers []byte

var (
	ErrCareerNotFound = errors.New("career not found")
	ErrEmptyCatalog   = errors.New("career catalog is empty")
	ErrDuplicateID    = errors.New("duplicate career id")
)

// Catalog es la colección de carreras en orden de inserción. Es de solo lectura:
// los métodos devuelven copias y nunca exponen los registros internos.
type Catalog struct {
	careers []domain.CareerRecord
	index   map[string]int
}

type catalogFile struct {
	Careers []domain.CareerRecord `yaml:"careers"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default devuelve el catálogo embebido, cargado una sola vez.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(bytes.NewReader(embeddedCareers))
	})
	return defaultCatalog, defaultErr
}

// Open carga el catálogo desde un archivo YAML; con path vacío usa el embebido.
func Open(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodifica un catálogo YAML.
func Load(r io.Reader) (*Catalog, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(file.Careers)
}

// New construye un catálogo a partir de registros ya armados (útil en tests).
func New(records []domain.CareerRecord) (*Catalog, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		careers: make([]domain.CareerRecord, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for _, rec := range records {
		id := strings.TrimSpace(rec.ID)
		if id == "" {
			return nil, fmt.Errorf("career %q has no id", rec.Title)
		}
		if _, dup := c.index[id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		for trait := range rec.TraitTargets {
			if !trait.Valid() {
				return nil, fmt.Errorf("career %s: unknown trait %q", id, trait)
			}
		}
		rec.ID = id
		c.index[id] = len(c.careers)
		c.careers = append(c.careers, rec.Clone())
	}
	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.careers)
}

// All devuelve copias de todas las carreras en orden de inserción.
func (c *Catalog) All() []domain.CareerRecord {
	out := make([]domain.CareerRecord, len(c.careers))
	for i, rec := range c.careers {
		out[i] = rec.Clone()
	}
	return out
}

// Get busca una carrera por id. Devuelve ErrCareerNotFound si no existe.
func (c *Catalog) Get(id string) (domain.CareerRecord, error) {
	i, ok := c.index[id]
	if !ok {
		return domain.CareerRecord{}, fmt.Errorf("%w: %s", ErrCareerNotFound, id)
	}
	return c.careers[i].Clone(), nil
}

// Position devuelve el índice de inserción de la carrera, o -1.
func (c *Catalog) Position(id string) int {
	i, ok := c.index[id]
	if !ok {
		return -1
	}
	return i
}

// Each recorre el catálogo en orden sin copiar. fn no debe mutar el registro.
func (c *Catalog) Each(fn func(position int, career domain.CareerRecord)) {
	for i, rec := range c.careers {
		fn(i, rec)
	}
}

// Search filtra por categoría (exacta, sin distinguir mayúsculas) y por palabras clave
// en título, descripción y skills requeridas.
func (c *Catalog) Search(category string, keywords []string) []domain.CareerRecord {
	category = strings.TrimSpace(category)
	var out []domain.CareerRecord
	for _, rec := range c.careers {
		if category != "" && !strings.EqualFold(rec.Category, category) {
			continue
		}
		if len(keywords) > 0 {
			text := strings.ToLower(rec.Title + " " + rec.Description + " " + strings.Join(rec.SkillsRequired, " "))
			found := false
			for _, kw := range keywords {
				kw = strings.ToLower(strings.TrimSpace(kw))
				if kw != "" && strings.Contains(text, kw) {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, rec.Clone())
	}
	return out
}

// BySkills devuelve las carreras que requieren alguna de las skills, con el conteo de coincidencias.
// La comparación ignora mayúsculas y trata "_" como espacio.
func (c *Catalog) BySkills(skills []string) map[string]int {
	wanted := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		wanted[normalizeSkill(s)] = struct{}{}
	}
	out := make(map[string]int)
	for _, rec := range c.careers {
		n := 0
		for _, req := range rec.SkillsRequired {
			if _, ok := wanted[normalizeSkill(req)]; ok {
				n++
			}
		}
		if n > 0 {
			out[rec.ID] = n
		}
	}
	return out
}

// Categories lista las categorías en orden de primera aparición.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range c.careers {
		if _, ok := seen[rec.Category]; ok {
			continue
		}
		seen[rec.Category] = struct{}{}
		out = append(out, rec.Category)
	}
	return out
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "_", " ")))
}
