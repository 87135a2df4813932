package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConcatenatedDetectsRunTogetherLines(t *testing.T) {
	text := strings.Join([]string{
		"ThisAgreementIsMadeBetweenThePartiesHereto",
		"TheLandlordAgreesToLeaseThePremisesToTheTenant",
		"TheTenantShallPayRentMonthlyInAdvance",
	}, "\n")
	assert.True(t, IsConcatenated(text))
}

func TestIsConcatenatedAcceptsNormalText(t *testing.T) {
	text := strings.Join([]string{
		"This agreement is made between the parties hereto.",
		"The landlord agrees to lease the premises to the tenant.",
		"The tenant shall pay rent monthly in advance.",
	}, "\n")
	assert.False(t, IsConcatenated(text))
}

func TestIsConcatenatedIgnoresShortLines(t *testing.T) {
	// Lines of 20 characters or fewer never count.
	text := "Page 1\nSigned\nWitness\nSeal"
	assert.False(t, IsConcatenated(text))
}

func TestIsConcatenatedRatioThreshold(t *testing.T) {
	// One bad line out of four substantial lines is 25%, below the 30% bar.
	text := strings.Join([]string{
		"ThisLineHasNoSpacesAtAllAndRunsTogether",
		"This line has perfectly normal word spacing here.",
		"Another line with perfectly normal word spacing.",
		"A third line with perfectly normal word spacing.",
	}, "\n")
	assert.False(t, IsConcatenated(text))
}

func TestFixSpacingInsertsBoundaries(t *testing.T) {
	assert.Equal(t, "rental Agreement", FixSpacing("rentalAgreement"))
	assert.Equal(t, "rent 5000", FixSpacing("rent5000"))
	assert.Equal(t, "end. Next", FixSpacing("end.Next"))
}

func TestFixSpacingLeavesCleanTextAlone(t *testing.T) {
	clean := "The tenant shall pay Rs. 5,000 per month."
	assert.Equal(t, clean, FixSpacing(clean))
}
