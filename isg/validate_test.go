package isg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOK(t *testing.T) {
	assert.NoError(t, sampleGridDoc().Validate())

	parsed, err := Parse(readFixture(t, "sparse_proj.isg"))
	require.NoError(t, err)
	assert.NoError(t, parsed.Validate())
}

func TestValidateVersion(t *testing.T) {
	doc := sampleGridDoc()
	doc.Header.ISGFormat = "1.01"
	var verErr *UnsupportedVersionError
	assert.ErrorAs(t, doc.Validate(), &verErr)
}

func TestValidateBoundsVariantMismatch(t *testing.T) {
	doc := sampleGridDoc()
	doc.Header.DataBounds = SparseGeodetic{
		LatMin: Dec(40), LatMax: Dec(41), LonMin: Dec(120), LonMax: Dec(121),
	}
	var bErr *BoundsFieldMismatchError
	require.ErrorAs(t, doc.Validate(), &bErr)
	assert.Empty(t, bErr.Field)
	assert.Equal(t, FormatGrid, bErr.Format)
}

func TestValidateMissingBounds(t *testing.T) {
	doc := sampleGridDoc()
	doc.Header.DataBounds = nil
	var valErr *ValidationError
	require.ErrorAs(t, doc.Validate(), &valErr)
	assert.Equal(t, "data bounds", valErr.Field)
}

func TestValidateInconsistentBounds(t *testing.T) {
	doc := sampleGridDoc()
	b := doc.Header.DataBounds.(GridGeodetic)
	b.LonMax = Dec(122.0)
	doc.Header.DataBounds = b
	var incErr *InconsistentBoundsError
	require.ErrorAs(t, doc.Validate(), &incErr)
	assert.Equal(t, "lon max", incErr.Axis)
}

func TestValidateNonPositiveDelta(t *testing.T) {
	doc := sampleGridDoc()
	b := doc.Header.DataBounds.(GridGeodetic)
	b.DeltaLat = Dec(-0.5)
	doc.Header.DataBounds = b
	var incErr *InconsistentBoundsError
	require.ErrorAs(t, doc.Validate(), &incErr)
	assert.Equal(t, "delta lat", incErr.Axis)
}

func TestValidateCoordKindMismatch(t *testing.T) {
	doc := sampleGridDoc()
	b := doc.Header.DataBounds.(GridGeodetic)
	b.LatMin = DMS(40, 0, 0)
	doc.Header.DataBounds = b
	var valErr *ValidationError
	require.ErrorAs(t, doc.Validate(), &valErr)
	assert.Equal(t, "lat min", valErr.Field)
}

func TestValidateProjectedNeedsMapProjection(t *testing.T) {
	parsed, err := Parse(readFixture(t, "sparse_proj.isg"))
	require.NoError(t, err)
	parsed.Header.MapProjection = nil
	var missErr *MissingFieldError
	require.ErrorAs(t, parsed.Validate(), &missErr)
	assert.Equal(t, "map projection", missErr.Field)
}

func TestValidateDataShape(t *testing.T) {
	doc := sampleGridDoc()
	doc.Data = doc.Data.(Grid)[:2]
	var cntErr *DataCountMismatchError
	require.ErrorAs(t, doc.Validate(), &cntErr)
	assert.Equal(t, "grid rows", cntErr.What)

	doc = sampleGridDoc()
	g := doc.Data.(Grid)
	g[1] = g[1][:2]
	require.ErrorAs(t, doc.Validate(), &cntErr)
	assert.Equal(t, "grid row values", cntErr.What)
}

func TestValidateDataFormatMismatch(t *testing.T) {
	doc := sampleGridDoc()
	doc.Data = Sparse{}
	var valErr *ValidationError
	require.ErrorAs(t, doc.Validate(), &valErr)
	assert.Equal(t, "data", valErr.Field)
}

func TestValidateMissingData(t *testing.T) {
	doc := sampleGridDoc()
	doc.Data = nil
	var valErr *ValidationError
	require.ErrorAs(t, doc.Validate(), &valErr)
	assert.Equal(t, "data", valErr.Field)
}

func TestValidateSparseEntries(t *testing.T) {
	parsed, err := Parse(readFixture(t, "sparse_proj.isg"))
	require.NoError(t, err)

	s := parsed.Data.(Sparse)
	s[1].A = DMS(45, 0, 0)
	var valErr *ValidationError
	require.ErrorAs(t, parsed.Validate(), &valErr)
	assert.Equal(t, "data", valErr.Field)

	parsed, err = Parse(readFixture(t, "sparse_proj.isg"))
	require.NoError(t, err)
	parsed.Data = parsed.Data.(Sparse)[:3]
	var cntErr *DataCountMismatchError
	require.ErrorAs(t, parsed.Validate(), &cntErr)
	assert.Equal(t, "sparse entries", cntErr.What)
}
