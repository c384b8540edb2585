package heredity

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Time exists to facilitate time parsing from the Metadata table, because
// pedigree index files may carry timestamps either as unixtime integers or
// as text strings.
type Time time.Time

func (t *Time) Scan(v interface{}) error {
	switch which := v.(type) {
	case int64:
		vt := time.Unix(which, 0)
		*t = Time(vt)
		return nil
	case int:
		vt := time.Unix(int64(which), 0)
		*t = Time(vt)
		return nil
	case []byte:
		vt, err := time.Parse("2006-01-02 15:04:05", string(which))
		if err != nil {
			return err
		}
		*t = Time(vt)
		return nil
	case string:
		vt, err := time.Parse("2006-01-02 15:04:05", which)
		if err != nil {
			return err
		}
		*t = Time(vt)
		return nil
	}

	return fmt.Errorf("No appropriate type could be found to decode %v", v)
}

// Value stores timestamps as unixtime.
func (t Time) Value() (driver.Value, error) {
	return time.Time(t).Unix(), nil
}
