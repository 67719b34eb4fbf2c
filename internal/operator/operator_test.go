package operator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type fakeCommitter struct {
	mutex     sync.Mutex
	commits   int
	rollbacks int
}

func (c *fakeCommitter) Commit(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.commits++
	return nil
}

func (c *fakeCommitter) Rollback(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.rollbacks++
	return nil
}

type fakeOpener struct {
	committer *fakeCommitter
	table     sqlconfig.ITransactionTable
	err       error
}

func (o *fakeOpener) Write(ctx context.Context) (*storage.Writer, error) {
	if o.err != nil {
		return nil, o.err
	}
	return storage.NewWriterWithTable(o.committer, o.table), nil
}

func startDelegator(t *testing.T, opener WriteOpener) *OperatorDelegator {
	t.Helper()
	delegator := NewOperatorDelegator(opener, 2)
	delegator.Start()
	t.Cleanup(delegator.Stop)
	return delegator
}

func TestProcess_CommitsOnSuccess(t *testing.T) {
	mockTable := sqlconfig.NewMockITransactionTable(t)
	committer := &fakeCommitter{}
	delegator := startDelegator(t, &fakeOpener{committer: committer, table: mockTable})

	stored := &sqlconfig.Transaction{ID: uuid.Must(uuid.NewV4()), Amount: decimal.RequireFromString("12.00")}
	mockTable.EXPECT().Insert(mock.Anything, mock.Anything).Return(stored, nil)

	action := &actions.CreateTransaction{Create: &sqlconfig.TransactionCreate{Amount: stored.Amount}}
	err := delegator.Process(context.Background(), action)

	assert.NoError(t, err)
	assert.Same(t, stored, action.Result)
	assert.Equal(t, 1, committer.commits)
	assert.Equal(t, 0, committer.rollbacks)
}

func TestProcess_RollsBackOnActionError(t *testing.T) {
	mockTable := sqlconfig.NewMockITransactionTable(t)
	committer := &fakeCommitter{}
	delegator := startDelegator(t, &fakeOpener{committer: committer, table: mockTable})

	id := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().Delete(mock.Anything, id).Return(false, errors.New("connection reset"))

	action := &actions.DeleteTransaction{ID: id}
	err := delegator.Process(context.Background(), action)

	assert.EqualError(t, err, "connection reset")
	assert.False(t, action.Deleted)
	assert.Equal(t, 0, committer.commits)
	assert.Equal(t, 1, committer.rollbacks)
}

func TestProcess_ReplaceMissingRowCommitsWithNilResult(t *testing.T) {
	mockTable := sqlconfig.NewMockITransactionTable(t)
	committer := &fakeCommitter{}
	delegator := startDelegator(t, &fakeOpener{committer: committer, table: mockTable})

	id := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().Update(mock.Anything, id, mock.Anything).Return(nil, nil)

	action := &actions.ReplaceTransaction{ID: id, Replace: &sqlconfig.TransactionCreate{}}
	err := delegator.Process(context.Background(), action)

	assert.NoError(t, err)
	assert.Nil(t, action.Result)
	assert.Equal(t, 1, committer.commits)
}

func TestProcess_WriteOpenError(t *testing.T) {
	delegator := startDelegator(t, &fakeOpener{err: errors.New("database unavailable")})

	err := delegator.Process(context.Background(), &actions.DeleteTransaction{ID: uuid.Must(uuid.NewV4())})

	assert.EqualError(t, err, "database unavailable")
}

func TestProcess_CancelledContext(t *testing.T) {
	mockTable := sqlconfig.NewMockITransactionTable(t)
	delegator := startDelegator(t, &fakeOpener{committer: &fakeCommitter{}, table: mockTable})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := delegator.Process(ctx, &actions.DeleteTransaction{ID: uuid.Must(uuid.NewV4())})

	assert.ErrorIs(t, err, context.Canceled)
	mockTable.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProcess_AfterStop(t *testing.T) {
	delegator := NewOperatorDelegator(&fakeOpener{committer: &fakeCommitter{}}, 1)
	delegator.Start()
	delegator.Stop()
	delegator.Stop()

	err := delegator.Process(context.Background(), &actions.DeleteTransaction{})

	assert.ErrorIs(t, err, ErrStopped)
}

func TestProcess_ConcurrentCallers(t *testing.T) {
	mockTable := sqlconfig.NewMockITransactionTable(t)
	committer := &fakeCommitter{}
	delegator := startDelegator(t, &fakeOpener{committer: committer, table: mockTable})

	mockTable.EXPECT().Delete(mock.Anything, mock.Anything).Return(true, nil)

	const callers = 20
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, delegator.Process(context.Background(), &actions.DeleteTransaction{ID: uuid.Must(uuid.NewV4())}))
		}()
	}
	wg.Wait()

	assert.Equal(t, callers, committer.commits)
}
