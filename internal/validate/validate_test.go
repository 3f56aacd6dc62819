package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("pratima@example.com"))
	assert.NoError(t, Email("a.b+c@mail.example.org"))

	assert.Error(t, Email(""))
	assert.Error(t, Email("plainaddress"))
	assert.Error(t, Email("missing@tld"))
	assert.Error(t, Email("two@@example.com"))
	assert.Error(t, Email("spa ce@example.com"))
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("Password1"))
	assert.NoError(t, Password("Str0ngEnough"))

	assert.Error(t, Password("Sh0rt"), "too short")
	assert.Error(t, Password("alllower1"), "no upper case")
	assert.Error(t, Password("ALLUPPER1"), "no lower case")
	assert.Error(t, Password("NoDigitsHere"), "no digit")
}

func TestPhone(t *testing.T) {
	assert.NoError(t, Phone(""), "phone is optional")
	assert.NoError(t, Phone("9801234567"))

	assert.Error(t, Phone("98012345"), "too short")
	assert.Error(t, Phone("98012345678"), "too long")
	assert.Error(t, Phone("98O1234567"), "non-digit")
	assert.Error(t, Phone("+980123456"), "leading plus")
}

func TestDOB(t *testing.T) {
	assert.NoError(t, DOB("1990-05-20"))

	old := time.Now().AddDate(-MinAge-1, 0, 0).Format("2006-01-02")
	assert.NoError(t, DOB(old))

	young := time.Now().AddDate(-MinAge+1, 0, 0).Format("2006-01-02")
	assert.Error(t, DOB(young), "under the age threshold")

	assert.Error(t, DOB(""), "empty")
	assert.Error(t, DOB("20-05-1990"), "wrong layout")
	assert.Error(t, DOB("not-a-date"))
}

func TestAgeAt(t *testing.T) {
	born := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 14, ageAt(born, time.Date(2015, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 15, ageAt(born, time.Date(2015, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 15, ageAt(born, time.Date(2016, 6, 14, 0, 0, 0, 0, time.UTC)))
}
