package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractQueryType(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType(`  select * from "payment_transactions"`))
	assert.Equal(t, "UPDATE", extractQueryType(`UPDATE "payment_transactions" SET status = 'settled'`))
	assert.Equal(t, "", extractQueryType(`BEGIN`))
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "payment_transactions", extractTableName(`SELECT * FROM "payment_transactions" WHERE id = 1`))
	assert.Equal(t, "payments", extractTableName("INSERT INTO `payments` (`amount`) VALUES (66)"))
	assert.Equal(t, "payables", extractTableName(`UPDATE "payables" SET amount = 1`))
	assert.Equal(t, "", extractTableName(`COMMIT`))
}
