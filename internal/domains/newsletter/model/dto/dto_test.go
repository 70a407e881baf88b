package dto_test

import (
	"testing"

	"haven/internal/domains/newsletter/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestSubscribeRequest_Normalize(t *testing.T) {
	req := dto.SubscribeRequest{Email: "  Hello@SunsetHaven.NG  "}
	req.Normalize()

	assert.Equal(t, "hello@sunsethaven.ng", req.Email)

	signup := req.ToModel("guest")

	assert.NotEmpty(t, signup.ID)
	assert.Equal(t, "hello@sunsethaven.ng", signup.Email)
	assert.Equal(t, "guest", signup.CreatedBy)
}
