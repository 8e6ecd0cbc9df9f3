// Package studio provides Go bindings for the FMOD Studio API: banks
// authored in FMOD Studio, the events they contain, and playable event
// instances.
//
// A studio.System implicitly creates a core system, so it goes through the
// same single-instance gate as fmod.NewSystem: safely creating either kind
// refuses the other until release. CoreSystem exposes the underlying core
// system as a borrowed fmod.System.
//
// Unlike the core API, Studio objects carry liveness queries. Bank,
// EventDescription, and EventInstance wrappers consult the native IsValid
// before forwarding, so unloading a bank flips its event descriptions and
// their live instances to the terminal stale state (fmod.ErrStaleHandle)
// instead of producing undefined behavior.
//
//	sys, err := studio.New(studio.Config{MaxChannels: 64})
//	if err != nil { ... }
//	defer sys.Release()
//
//	bank, err := sys.LoadBankFile("Master.bank", studio.LoadBankNormal)
//	if err != nil { ... }
//	desc, err := sys.Event("event:/UI/Click")
//	inst, err := desc.CreateInstance()
//	err = inst.Start()
package studio
