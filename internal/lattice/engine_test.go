package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCleanDocument(t *testing.T) {
	t.Parallel()

	rep, err := Validate(validDoc())
	require.NoError(t, err)
	assert.True(t, rep.IsValid())
	assert.Empty(t, rep.Diagnostics)
}

func TestValidateContractBreaches(t *testing.T) {
	t.Parallel()

	t.Run("root must be a mapping", func(t *testing.T) {
		t.Parallel()
		_, err := Validate(Sequence(Number(1)))
		var want *NotAMappingError
		require.ErrorAs(t, err, &want)
		assert.Equal(t, KindSequence, want.Kind)
	})

	t.Run("every group must be present", func(t *testing.T) {
		t.Parallel()
		doc := Mapping() // no groups at all
		_, err := Validate(doc)
		var want *MissingGroupError
		require.ErrorAs(t, err, &want)
		assert.Equal(t, "box", want.Group)
	})

	t.Run("groups must be mappings", func(t *testing.T) {
		t.Parallel()
		doc := validDoc().WithFieldValue("lattice", Sequence(Number(1)))
		_, err := Validate(doc)
		var want *GroupNotMappingError
		require.ErrorAs(t, err, &want)
		assert.Equal(t, "lattice", want.Group)
		assert.Equal(t, KindSequence, want.Kind)
	})

	t.Run("no stray top-level groups", func(t *testing.T) {
		t.Parallel()
		doc := validDoc().WithFieldValue("extras", Mapping())
		_, err := Validate(doc)
		var want *UnexpectedGroupError
		require.ErrorAs(t, err, &want)
		assert.Equal(t, "extras", want.Group)
	})
}

func TestValidateIsPure(t *testing.T) {
	t.Parallel()

	doc := withGroupField(validDoc(), "box", "height", Number(-1))

	// Two runs over the same tree must not influence each other, and the
	// tree itself must be left untouched.
	rep1, err := Validate(doc)
	require.NoError(t, err)
	rep2, err := Validate(doc)
	require.NoError(t, err)

	assert.Equal(t, rep1.Diagnostics, rep2.Diagnostics)
	assert.InDelta(t, -1.0, doc.FieldValue("box").FieldValue("height").Float(), 0)
}
