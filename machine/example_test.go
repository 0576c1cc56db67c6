package machine_test

import (
	"fmt"

	"github.com/706f6c6c7578/enigma/component"
	"github.com/706f6c6c7578/enigma/format"
	"github.com/706f6c6c7578/enigma/machine"
)

func ExampleMachine_Encode() {
	m, err := machine.NewBuilder().
		WithCables("AM FI NV PS TU WZ").
		WithRotorRingIndex(1, component.RotorIII(), 22, 'L').
		WithRotorRingIndex(2, component.RotorI(), 13, 'B').
		WithRotorRingIndex(3, component.RotorII(), 24, 'A').
		WithReflector(component.ReflectorA(), 'A').
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}

	code, _ := m.Encode("FEIND LIQEI NFANT ERIEK OLONN")
	fmt.Println(format.Group5(code))

	plain, _ := m.Decode(code)
	fmt.Println(format.Group5(plain))
	// Output:
	// GCDSE AHUGW TQGRK VLFGX UCALX
	// FEIND LIQEI NFANT ERIEK OLONN
}
