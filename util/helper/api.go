package helper_util

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/aptmgr/console/model"
)

const maxPageSize = 100

// GetPageRequest reads page, size and sort from the query string.
func GetPageRequest(c *gin.Context) (model.PageRequest, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(model.DefaultPage.Page)))
	if err != nil || page < 0 {
		return model.PageRequest{}, fmt.Errorf("invalid page %q", c.Query("page"))
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(model.DefaultPage.Size)))
	if err != nil || size <= 0 || size > maxPageSize {
		return model.PageRequest{}, fmt.Errorf("invalid size %q", c.Query("size"))
	}
	return model.PageRequest{Page: page, Size: size, Sort: c.Query("sort")}, nil
}

// GetIDParam parses a positive int64 path parameter.
func GetIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, c.Param(name))
	}
	return id, nil
}

func GetBoolQuery(c *gin.Context, name string) bool {
	v, err := strconv.ParseBool(c.Query(name))
	return err == nil && v
}

// GetDateRange reads startDate and endDate from the query string. Either may
// be empty; when both are given the start must not be after the end.
func GetDateRange(c *gin.Context) (model.DateRange, error) {
	var dates model.DateRange
	if err := c.ShouldBindQuery(&dates); err != nil {
		return dates, err
	}
	start, err := ParseOptionalDate(dates.StartDate)
	if err != nil {
		return dates, err
	}
	end, err := ParseOptionalDate(dates.EndDate)
	if err != nil {
		return dates, err
	}
	if start != nil && end != nil && start.After(*end) {
		return dates, fmt.Errorf("startDate %s is after endDate %s", dates.StartDate, dates.EndDate)
	}
	return dates, nil
}
