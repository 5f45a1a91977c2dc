package schemaio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gfx-labs/sszview/schemaio"
	"github.com/gfx-labs/sszview/view"
)

const identityDoc = `
package: identity
types:
  - name: Credential
    type: container
    children:
      - name: id
        type: uint64
      - name: name
        type: bytelist
        limit: 32
  - name: Profile
    type: container
    children:
      - name: credential
        type: ref
        ref: Credential
      - name: tags
        type: list
        limit: 4
        children:
          - name: element
            type: uint16
`

func TestLoadBuildsDeclaredTypes(t *testing.T) {
	types, err := schemaio.Load([]byte(identityDoc))
	require.NoError(t, err)
	require.Contains(t, types, "Credential")
	require.Contains(t, types, "Profile")

	credential, ok := types["Credential"].(interface{ NumFields() int })
	require.True(t, ok)
	require.Equal(t, 2, credential.NumFields())
}

func TestFromObjToObjRoundTrip(t *testing.T) {
	types, err := schemaio.Load([]byte(identityDoc))
	require.NoError(t, err)
	credentialType := types["Credential"]

	raw := map[string]interface{}{
		"id":   uint64(7),
		"name": []byte("alice"),
	}
	v, err := schemaio.FromObj(credentialType, raw)
	require.NoError(t, err)

	obj, err := schemaio.ToObj(v)
	require.NoError(t, err)
	m := obj.(map[string]interface{})
	require.Equal(t, uint64(7), m["id"])
	require.Equal(t, []byte("alice"), m["name"])

	v2, err := schemaio.FromObj(credentialType, m)
	require.NoError(t, err)
	root1, err := v.HashTreeRoot()
	require.NoError(t, err)
	root2, err := v2.HashTreeRoot()
	require.NoError(t, err)
	require.Equal(t, root1, root2)
}

func TestFromObjRejectsUnknownField(t *testing.T) {
	types, err := schemaio.Load([]byte(identityDoc))
	require.NoError(t, err)
	credentialType := types["Credential"]

	_, err = schemaio.FromObj(credentialType, map[string]interface{}{
		"id":      uint64(1),
		"unknown": true,
	})
	require.Error(t, err)
}

func TestFromObjListOfUint16(t *testing.T) {
	types, err := schemaio.Load([]byte(identityDoc))
	require.NoError(t, err)
	profileType := types["Profile"]

	v, err := schemaio.FromObj(profileType, map[string]interface{}{
		"credential": map[string]interface{}{
			"id":   uint64(1),
			"name": []byte("bob"),
		},
		"tags": []interface{}{uint64(10), uint64(20)},
	})
	require.NoError(t, err)

	cv := v.(*view.ContainerView)
	tagsField, err := cv.Field("tags")
	require.NoError(t, err)
	lv := tagsField.(*view.ListView)
	n, err := lv.Len()
	require.NoError(t, err)
	require.Equal(t, 2, n)
}
