package data

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Change is one staged write. Apply runs inside the flush transaction and
// reports the number of rows it touched.
type Change struct {
	Name  string
	Apply func(tx *gorm.DB) (int64, error)
}

// ChangeSet collects staged writes of one unit of work and flushes them in a
// single transaction. It is not safe for concurrent use.
type ChangeSet struct {
	transactionManager TransactionManager
	changes            []Change
}

func NewChangeSet(transactionManager TransactionManager) *ChangeSet {
	return &ChangeSet{transactionManager: transactionManager}
}

func (c *ChangeSet) Stage(name string, apply func(tx *gorm.DB) (int64, error)) {
	logrus.Debugf("ChangeSet.Stage: [%p] %s", c, name)
	c.changes = append(c.changes, Change{Name: name, Apply: apply})
}

func (c *ChangeSet) Len() int {
	return len(c.changes)
}

func (c *ChangeSet) TransactionManager() TransactionManager {
	return c.transactionManager
}

// Flush applies every staged change in order inside one transaction and
// returns the total number of affected rows. The set is emptied whether or
// not the flush succeeds. Store errors are returned unchanged.
func (c *ChangeSet) Flush(ctx context.Context) (int64, error) {
	if len(c.changes) == 0 {
		return 0, nil
	}
	changes := c.changes
	c.changes = nil

	var affected int64
	err := c.transactionManager.Do(ctx, func(ctx context.Context) error {
		tx, ok := c.transactionManager.Get(ctx).(*gorm.DB)
		if !ok {
			return fmt.Errorf("ChangeSet.Flush: transaction manager %T has no gorm session", c.transactionManager)
		}
		for _, change := range changes {
			n, err := change.Apply(tx)
			if err != nil {
				logrus.Debugf("ChangeSet.Flush: [%p] %s failed: %v", c, change.Name, err)
				return err
			}
			affected += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	logrus.Debugf("ChangeSet.Flush: [%p] %d changes, %d rows", c, len(changes), affected)
	return affected, nil
}
