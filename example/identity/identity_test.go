package identity

import (
	"encoding/hex"
	"testing"
)

func TestIdentityMarshalAndHash(t *testing.T) {
	id := NewIdentity()

	var name [32]byte
	copy(name[:], []byte("Emperor Penguin"))
	if err := id.SetName(name); err != nil {
		t.Fatalf("SetName: %v", err)
	}

	species := [2]byte{0xFF, 0x00}
	if err := id.SetSpecies(species); err != nil {
		t.Fatalf("SetSpecies: %v", err)
	}

	if err := id.SetAwesomness(1000); err != nil {
		t.Fatalf("SetAwesomness: %v", err)
	}
	if err := id.SetCuteness(255); err != nil {
		t.Fatalf("SetCuteness: %v", err)
	}

	var pubKey [48]byte
	copy(pubKey[:], []byte("test-public-key-for-penguin"))
	credential, err := NewCredentialWithValues(9876543210, pubKey)
	if err != nil {
		t.Fatalf("NewCredentialWithValues: %v", err)
	}
	if err := id.SetCredential(credential); err != nil {
		t.Fatalf("SetCredential: %v", err)
	}

	data, err := id.MarshalSSZ()
	if err != nil {
		t.Fatalf("MarshalSSZ: %v", err)
	}
	if len(data) != 93 {
		t.Errorf("expected 93 bytes, got %d", len(data))
	}

	hash, err := id.HashSSZ()
	if err != nil {
		t.Fatalf("HashSSZ: %v", err)
	}
	t.Logf("identity hash: %s", hex.EncodeToString(hash[:]))

	hash2, err := id.HashSSZ()
	if err != nil {
		t.Fatalf("second HashSSZ: %v", err)
	}
	if hash != hash2 {
		t.Errorf("hash not deterministic: %x != %x", hash, hash2)
	}
}

func TestIdentityGettersSetters(t *testing.T) {
	id := NewIdentity()

	var name [32]byte
	copy(name[:], []byte("Adelie Penguin"))
	if err := id.SetName(name); err != nil {
		t.Fatalf("SetName: %v", err)
	}
	gotName, err := id.Name()
	if err != nil {
		t.Fatalf("Name: %v", err)
	}
	if gotName != name {
		t.Errorf("name mismatch")
	}

	species := [2]byte{0x12, 0x34}
	if err := id.SetSpecies(species); err != nil {
		t.Fatalf("SetSpecies: %v", err)
	}
	gotSpecies, err := id.Species()
	if err != nil {
		t.Fatalf("Species: %v", err)
	}
	if gotSpecies != species {
		t.Errorf("species mismatch")
	}

	if err := id.SetAwesomness(42); err != nil {
		t.Fatalf("SetAwesomness: %v", err)
	}
	if v, _ := id.Awesomness(); v != 42 {
		t.Errorf("awesomness mismatch: expected 42, got %d", v)
	}

	if err := id.SetCuteness(100); err != nil {
		t.Fatalf("SetCuteness: %v", err)
	}
	if v, _ := id.Cuteness(); v != 100 {
		t.Errorf("cuteness mismatch: expected 100, got %d", v)
	}
}

func TestNewIdentityWithValues(t *testing.T) {
	var name [32]byte
	copy(name[:], []byte("King Penguin"))
	species := [2]byte{0xAA, 0xBB}
	awesomness := uint16(9999)
	cuteness := uint8(200)

	var pubKey [48]byte
	copy(pubKey[:], []byte("test-public-key"))
	credential, err := NewCredentialWithValues(12345, pubKey)
	if err != nil {
		t.Fatalf("NewCredentialWithValues: %v", err)
	}

	id, err := NewIdentityWithValues(name, species, awesomness, cuteness, credential)
	if err != nil {
		t.Fatalf("NewIdentityWithValues: %v", err)
	}

	if gotName, _ := id.Name(); gotName != name {
		t.Errorf("name not set correctly")
	}
	if gotSpecies, _ := id.Species(); gotSpecies != species {
		t.Errorf("species not set correctly")
	}
	if gotAwesomness, _ := id.Awesomness(); gotAwesomness != awesomness {
		t.Errorf("awesomness not set correctly")
	}
	if gotCuteness, _ := id.Cuteness(); gotCuteness != cuteness {
		t.Errorf("cuteness not set correctly")
	}

	gotCredential, err := id.Credential()
	if err != nil {
		t.Fatalf("Credential: %v", err)
	}
	if gotID, _ := gotCredential.Id(); gotID != 12345 {
		t.Errorf("credential id not set correctly")
	}
}

func TestIdentityEncodeDecodeRoundTrip(t *testing.T) {
	var pubKey [48]byte
	copy(pubKey[:], []byte("round-trip-key"))
	credential, err := NewCredentialWithValues(7, pubKey)
	if err != nil {
		t.Fatalf("NewCredentialWithValues: %v", err)
	}

	var name [32]byte
	copy(name[:], []byte("Gentoo Penguin"))
	id, err := NewIdentityWithValues(name, [2]byte{1, 2}, 5, 6, credential)
	if err != nil {
		t.Fatalf("NewIdentityWithValues: %v", err)
	}

	data, err := id.MarshalSSZ()
	if err != nil {
		t.Fatalf("MarshalSSZ: %v", err)
	}

	decoded, err := DecodeIdentity(data)
	if err != nil {
		t.Fatalf("DecodeIdentity: %v", err)
	}

	wantRoot, err := id.HashSSZ()
	if err != nil {
		t.Fatalf("HashSSZ: %v", err)
	}
	gotRoot, err := decoded.HashSSZ()
	if err != nil {
		t.Fatalf("decoded HashSSZ: %v", err)
	}
	if wantRoot != gotRoot {
		t.Errorf("root mismatch after decode: %x != %x", wantRoot, gotRoot)
	}
}
