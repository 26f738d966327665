package domain

import (
	"encoding/json"
	"math"
)

// Trait identifica uno de los cinco rasgos del modelo Big Five (OCEAN).
type Trait string

const (
	TraitOpenness          Trait = "openness"
	TraitConscientiousness Trait = "conscientiousness"
	TraitExtraversion      Trait = "extraversion"
	TraitAgreeableness     Trait = "agreeableness"
	TraitNeuroticism       Trait = "neuroticism"
)

// Traits enumera los rasgos en orden canónico.
var Traits = [5]Trait{
	TraitOpenness,
	TraitConscientiousness,
	TraitExtraversion,
	TraitAgreeableness,
	TraitNeuroticism,
}

// NeutralScore es el valor usado cuando falta información de comparación.
const NeutralScore = 0.5

func (t Trait) index() int {
	for i, tr := range Traits {
		if tr == t {
			return i
		}
	}
	return -1
}

// Valid indica si el rasgo pertenece al modelo.
func (t Trait) Valid() bool {
	return t.index() >= 0
}

// TraitVector guarda los cinco puntajes de rasgo en [0,1].
// Es inmutable: las cinco claves siempre existen y los valores llegan ya acotados.
type TraitVector struct {
	scores [5]float64
}

// NewTraitVector construye el vector a partir de un mapa. Los rasgos ausentes quedan en 0.5
// y los valores fuera de rango se recortan a [0,1].
func NewTraitVector(scores map[Trait]float64) TraitVector {
	var v TraitVector
	for i, t := range Traits {
		val, ok := scores[t]
		if !ok {
			val = NeutralScore
		}
		v.scores[i] = Clamp01(val)
	}
	return v
}

// NeutralTraitVector devuelve un vector con todos los rasgos en 0.5.
func NeutralTraitVector() TraitVector {
	return NewTraitVector(nil)
}

// Score devuelve el puntaje del rasgo, o 0.5 si el rasgo no es válido.
func (v TraitVector) Score(t Trait) float64 {
	i := t.index()
	if i < 0 {
		return NeutralScore
	}
	return v.scores[i]
}

// Map devuelve una copia del vector como mapa.
func (v TraitVector) Map() map[Trait]float64 {
	out := make(map[Trait]float64, len(Traits))
	for i, t := range Traits {
		out[t] = v.scores[i]
	}
	return out
}

// Float32s devuelve el vector en orden canónico, listo para columnas pgvector.
func (v TraitVector) Float32s() []float32 {
	out := make([]float32, len(v.scores))
	for i, s := range v.scores {
		out[i] = float32(s)
	}
	return out
}

// Distance es la distancia euclidiana entre dos vectores.
func (v TraitVector) Distance(other TraitVector) float64 {
	var sum float64
	for i := range v.scores {
		d := v.scores[i] - other.scores[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func (v TraitVector) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Map())
}

func (v *TraitVector) UnmarshalJSON(data []byte) error {
	var m map[Trait]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*v = NewTraitVector(m)
	return nil
}

// Clamp01 recorta un valor al rango [0,1]. NaN se trata como 0.
func Clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
