package mocks_test

import (
	"testing"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/data"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func TestSpyUsingOriginalImplementation(t *testing.T) {
	labeler := data.NewLabeler()
	spy := mocks.SpyOn(&labeler.Name)
	defer spy.MockRestore()

	assert.Equal(t, "Pizza name: Cheese", labeler.Name("Cheese"))
	spy.AssertCalledWith(t, "Cheese")
}

func TestSpyUsingMockImplementation(t *testing.T) {
	labeler := data.NewLabeler()
	spy := mocks.SpyOn(&labeler.Name)

	spy.MockImplementation(func(string) string { return "Crazy pizza" })
	assert.Equal(t, "Crazy pizza", labeler.Name("Cheese"))

	spy.MockRestore()
	assert.Equal(t, "Pizza name: Cheese", labeler.Name("Cheese"))
	spy.AssertCalledTimes(t, 1)
}

func TestSpyObservesCallsThroughOwner(t *testing.T) {
	labeler := data.NewLabeler()
	spy := mocks.SpyOn(&labeler.Price)
	defer spy.MockRestore()

	line := labeler.Line(data.Pizzas()[2])

	assert.Equal(t, "Pizza name: New York Pizza ($8.00)", line)
	spy.AssertLastCalledWith(t, 8)
	spy.AssertLastReturnedWith(t, "$8.00")
}

func TestSpyRestoreIsIdempotent(t *testing.T) {
	labeler := data.NewLabeler()
	spy := mocks.SpyOn(&labeler.Name)

	spy.MockRestore()
	spy.MockRestore()

	assert.Equal(t, "Pizza name: Cheese", labeler.Name("Cheese"))
	assert.Equal(t, "Pizza name: Cheese", spy.Original()("Cheese"))
	spy.AssertCalledTimes(t, 0)
}

func TestSpyMockReturnValue(t *testing.T) {
	labeler := data.NewLabeler()
	spy := mocks.SpyOn(&labeler.Name)

	spy.MockReturnValue("Crazy pizza")
	assert.Equal(t, "Crazy pizza", labeler.Name("Cheese"))
	spy.AssertCalledWith(t, "Cheese")

	spy.MockRestore()
	assert.Equal(t, "Pizza name: Cheese", labeler.Name("Cheese"))
	spy.AssertCalledTimes(t, 1)
}

func TestSpyMockReturnValueOnce(t *testing.T) {
	labeler := data.NewLabeler()
	spy := mocks.SpyOn(&labeler.Name)
	defer spy.MockRestore()

	spy.MockReturnValueOnce("Crazy pizza")

	assert.Equal(t, "Crazy pizza", labeler.Name("Cheese"))
	assert.Equal(t, "Pizza name: Cheese", labeler.Name("Cheese"))
}
