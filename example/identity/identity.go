// Package identity is a worked example of building types on this
// module and using them the way generated code would: typed wrapper
// structs over view.View with getter/setter methods, MarshalSSZ/
// HashSSZ entry points, and a Decode constructor — the same surface
// the teacher's examples/penguin package exposed over code generated
// from a schema, built here directly against the schema/view/codec
// packages instead.
package identity

import (
	"github.com/gfx-labs/sszview/codec"
	"github.com/gfx-labs/sszview/schema"
	"github.com/gfx-labs/sszview/view"
)

// CredentialType and IdentityType are the descriptors backing
// Credential and Identity, built once at package load the way the
// teacher's generated code declares its type constants.
var (
	CredentialType *schema.Container
	IdentityType   *schema.Container
)

func init() {
	publicKeyType, err := schema.NewByteVector(48)
	if err != nil {
		panic(err)
	}
	CredentialType, err = schema.NewContainer("Credential",
		schema.FieldDef{Name: "id", Type: schema.Uint64},
		schema.FieldDef{Name: "publicKey", Type: publicKeyType},
	)
	if err != nil {
		panic(err)
	}

	nameType, err := schema.NewByteVector(32)
	if err != nil {
		panic(err)
	}
	speciesType, err := schema.NewByteVector(2)
	if err != nil {
		panic(err)
	}
	IdentityType, err = schema.NewContainer("Identity",
		schema.FieldDef{Name: "name", Type: nameType},
		schema.FieldDef{Name: "species", Type: speciesType},
		schema.FieldDef{Name: "awesomness", Type: schema.Uint16},
		schema.FieldDef{Name: "cuteness", Type: schema.Uint8},
		schema.FieldDef{Name: "credential", Type: CredentialType},
	)
	if err != nil {
		panic(err)
	}
}

// Credential pairs a numeric id with a 48-byte public key — the
// nested message an Identity embeds, the way the teacher's penguin
// embedded its own Identity container.
type Credential struct {
	v *view.ContainerView
}

// NewCredential builds a zero-valued Credential.
func NewCredential() *Credential {
	return &Credential{v: view.NewRoot(CredentialType).(*view.ContainerView)}
}

// NewCredentialWithValues builds a Credential already populated with
// id and publicKey.
func NewCredentialWithValues(id uint64, publicKey [48]byte) (*Credential, error) {
	c := NewCredential()
	if err := c.SetId(id); err != nil {
		return nil, err
	}
	if err := c.SetPublicKey(publicKey[:]); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Credential) Id() (uint64, error) {
	f, err := c.v.Field("id")
	if err != nil {
		return 0, err
	}
	return f.(*view.BasicView).Uint()
}

func (c *Credential) SetId(id uint64) error {
	f, err := c.v.Field("id")
	if err != nil {
		return err
	}
	return f.(*view.BasicView).SetUint(id)
}

func (c *Credential) PublicKey() ([]byte, error) {
	f, err := c.v.Field("publicKey")
	if err != nil {
		return nil, err
	}
	return f.(*view.ByteVectorView).Bytes(), nil
}

func (c *Credential) SetPublicKey(publicKey []byte) error {
	f, err := c.v.Field("publicKey")
	if err != nil {
		return err
	}
	return f.(*view.ByteVectorView).SetBytes(publicKey)
}

// HashSSZ is Credential's hash-tree-root.
func (c *Credential) HashSSZ() ([32]byte, error) { return c.v.HashTreeRoot() }

// MarshalSSZ encodes Credential to its canonical wire bytes.
func (c *Credential) MarshalSSZ() ([]byte, error) { return codec.Encode(c.v) }

// DecodeCredential decodes data into a Credential.
func DecodeCredential(data []byte) (*Credential, error) {
	v, err := codec.Decode(CredentialType, data)
	if err != nil {
		return nil, err
	}
	return &Credential{v: v.(*view.ContainerView)}, nil
}

// Identity is the example's top-level container: a name, a two-byte
// species tag, two small numeric ratings, and an embedded Credential.
type Identity struct {
	v *view.ContainerView
}

// NewIdentity builds a zero-valued Identity.
func NewIdentity() *Identity {
	return &Identity{v: view.NewRoot(IdentityType).(*view.ContainerView)}
}

// NewIdentityWithValues builds an Identity already populated with
// every field, including a fully-built Credential.
func NewIdentityWithValues(name [32]byte, species [2]byte, awesomness uint16, cuteness uint8, credential *Credential) (*Identity, error) {
	id := NewIdentity()
	if err := id.SetName(name); err != nil {
		return nil, err
	}
	if err := id.SetSpecies(species); err != nil {
		return nil, err
	}
	if err := id.SetAwesomness(awesomness); err != nil {
		return nil, err
	}
	if err := id.SetCuteness(cuteness); err != nil {
		return nil, err
	}
	if credential != nil {
		if err := id.SetCredential(credential); err != nil {
			return nil, err
		}
	}
	return id, nil
}

func (id *Identity) Name() ([32]byte, error) {
	var out [32]byte
	f, err := id.v.Field("name")
	if err != nil {
		return out, err
	}
	copy(out[:], f.(*view.ByteVectorView).Bytes())
	return out, nil
}

func (id *Identity) SetName(name [32]byte) error {
	f, err := id.v.Field("name")
	if err != nil {
		return err
	}
	return f.(*view.ByteVectorView).SetBytes(name[:])
}

func (id *Identity) Species() ([2]byte, error) {
	var out [2]byte
	f, err := id.v.Field("species")
	if err != nil {
		return out, err
	}
	copy(out[:], f.(*view.ByteVectorView).Bytes())
	return out, nil
}

func (id *Identity) SetSpecies(species [2]byte) error {
	f, err := id.v.Field("species")
	if err != nil {
		return err
	}
	return f.(*view.ByteVectorView).SetBytes(species[:])
}

func (id *Identity) Awesomness() (uint16, error) {
	f, err := id.v.Field("awesomness")
	if err != nil {
		return 0, err
	}
	n, err := f.(*view.BasicView).Uint()
	return uint16(n), err
}

func (id *Identity) SetAwesomness(v uint16) error {
	f, err := id.v.Field("awesomness")
	if err != nil {
		return err
	}
	return f.(*view.BasicView).SetUint(uint64(v))
}

func (id *Identity) Cuteness() (uint8, error) {
	f, err := id.v.Field("cuteness")
	if err != nil {
		return 0, err
	}
	n, err := f.(*view.BasicView).Uint()
	return uint8(n), err
}

func (id *Identity) SetCuteness(v uint8) error {
	f, err := id.v.Field("cuteness")
	if err != nil {
		return err
	}
	return f.(*view.BasicView).SetUint(uint64(v))
}

// Credential returns the embedded credential field, live-wired into
// id — mutating the returned Credential updates id's root
// automatically, through the same upward-rebind hook every nested
// view installs on its parent.
func (id *Identity) Credential() (*Credential, error) {
	f, err := id.v.Field("credential")
	if err != nil {
		return nil, err
	}
	return &Credential{v: f.(*view.ContainerView)}, nil
}

// SetCredential copies credential's fields into id's embedded
// Credential, the way the teacher's SetIdentity(identity) installed a
// whole separately-built sub-message.
func (id *Identity) SetCredential(credential *Credential) error {
	dst, err := id.Credential()
	if err != nil {
		return err
	}
	cid, err := credential.Id()
	if err != nil {
		return err
	}
	if err := dst.SetId(cid); err != nil {
		return err
	}
	pk, err := credential.PublicKey()
	if err != nil {
		return err
	}
	return dst.SetPublicKey(pk)
}

// HashSSZ is Identity's hash-tree-root.
func (id *Identity) HashSSZ() ([32]byte, error) { return id.v.HashTreeRoot() }

// MarshalSSZ encodes Identity to its canonical wire bytes.
func (id *Identity) MarshalSSZ() ([]byte, error) { return codec.Encode(id.v) }

// DecodeIdentity decodes data into an Identity.
func DecodeIdentity(data []byte) (*Identity, error) {
	v, err := codec.Decode(IdentityType, data)
	if err != nil {
		return nil, err
	}
	return &Identity{v: v.(*view.ContainerView)}, nil
}
