package model

import (
	"go-atm-sim/common"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAccountRequest_Validation(t *testing.T) {
	valid := CreateAccountRequest{Username: "alice", PIN: "1234"}
	assert.NoError(t, common.ValidateStruct(valid))

	for name, req := range map[string]CreateAccountRequest{
		"missing username": {PIN: "1234"},
		"missing pin":      {Username: "alice"},
		"short pin":        {Username: "alice", PIN: "123"},
		"long pin":         {Username: "alice", PIN: "12345"},
		"non-numeric pin":  {Username: "alice", PIN: "12a4"},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, common.ValidateStruct(req))
		})
	}
}

func TestAmountRequest_Validation(t *testing.T) {
	assert.NoError(t, common.ValidateStruct(AmountRequest{Token: "t", Amount: 50}))
	assert.Error(t, common.ValidateStruct(AmountRequest{Token: "t", Amount: 0}))
	assert.Error(t, common.ValidateStruct(AmountRequest{Token: "t", Amount: -5}))
	assert.Error(t, common.ValidateStruct(AmountRequest{Amount: 50}))
}
