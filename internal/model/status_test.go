package model

import "testing"

func TestFetchStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   FetchStatus
		expected bool
	}{
		{FetchStatusIdle, false},
		{FetchStatusLoading, true},
		{FetchStatusLoaded, false},
		{FetchStatusErrored, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("FetchStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestFetchStatus_CanFetch(t *testing.T) {
	tests := []struct {
		status   FetchStatus
		expected bool
	}{
		{FetchStatusIdle, true},
		{FetchStatusLoading, false},
		{FetchStatusLoaded, true},
		{FetchStatusErrored, true},
	}

	for _, test := range tests {
		result := test.status.CanFetch()
		if result != test.expected {
			t.Errorf("FetchStatus(%s).CanFetch() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestCategory_IsValid(t *testing.T) {
	tests := []struct {
		category Category
		expected bool
	}{
		{CategoryAny, true},
		{CategoryProgramming, true},
		{CategoryChristmas, true},
		{Category("Nonsense"), false},
		{Category(""), false},
	}

	for _, test := range tests {
		result := test.category.IsValid()
		if result != test.expected {
			t.Errorf("Category(%s).IsValid() = %v, expected %v", test.category, result, test.expected)
		}
	}
}

func TestCategories_SentinelFirst(t *testing.T) {
	categories := Categories()
	if len(categories) == 0 {
		t.Fatal("Categories() returned empty set")
	}
	if categories[0] != CategoryAny {
		t.Errorf("Expected first category to be %s, got %s", CategoryAny, categories[0])
	}
}
