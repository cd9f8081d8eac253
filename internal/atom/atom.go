package atom

import "fmt"

// Atom owns the electron collection for one atomic number.
type Atom struct {
	Number    int
	Electrons []Electron
}

// New validates z and allocates its electrons.
func New(z int) (*Atom, error) {
	a := &Atom{}
	if err := a.Reset(z); err != nil {
		return nil, err
	}
	return a, nil
}

// Reset replaces the whole electron collection with the one for z.
func (a *Atom) Reset(z int) error {
	if z < MinAtomicNumber || z > MaxAtomicNumber {
		return fmt.Errorf("atomic number %d outside [%d,%d]", z, MinAtomicNumber, MaxAtomicNumber)
	}
	a.Number = z
	a.Electrons = Allocate(z)
	return nil
}

// Update advances every electron by dt seconds.
func (a *Atom) Update(dt float32) {
	for i := range a.Electrons {
		a.Electrons[i].Advance(dt)
	}
}
