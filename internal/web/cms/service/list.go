package service

import (
	"context"
	"regexp"

	"github.com/Laisky/errors/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dto"
)

// searchFilter builds a case-insensitive OR match of the escaped search
// text across the given document fields. Escaping keeps user input from
// being interpreted as regex operators.
func searchFilter(search string, fields []string) bson.D {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}

	or := bson.A{}
	for _, f := range fields {
		or = append(or, bson.M{f: re})
	}

	return bson.D{{Key: "$or", Value: or}}
}

// visibilityFilter restricts a listing to publicly visible documents;
// flag names the boolean field that marks visibility.
func visibilityFilter(flag string) bson.E {
	return bson.E{Key: flag, Value: true}
}

// orderedSort sorts by the manual order key ascending, ties broken by
// creation time descending.
var orderedSort = bson.D{
	{Key: "order", Value: 1},
	{Key: "created_at", Value: -1},
}

// createdSort sorts by creation time descending.
var createdSort = bson.D{{Key: "created_at", Value: -1}}

// listDocuments runs the page slice and the total count concurrently
// against the identical filter, keeping the page math consistent with
// the returned slice.
func listDocuments[T any](ctx context.Context, col *mongoLib.Collection,
	filter bson.D, sort bson.D, opts dto.ListOpts) (results []*T, p dto.Pagination, err error) {
	var totalCount int64
	results = []*T{}

	pool, gctx := errgroup.WithContext(ctx)
	pool.Go(func() error {
		cur, err := col.Find(gctx, filter,
			options.Find().SetSort(sort),
			options.Find().SetSkip(opts.Skip()),
			options.Find().SetLimit(int64(opts.Limit)),
		)
		if err != nil {
			return errors.Wrap(err, "find documents")
		}

		if err = cur.All(gctx, &results); err != nil {
			return errors.Wrap(err, "load documents")
		}

		return nil
	})
	pool.Go(func() error {
		cnt, err := col.CountDocuments(gctx, filter)
		if err != nil {
			return errors.Wrap(err, "count documents")
		}

		totalCount = cnt
		return nil
	})

	if err := pool.Wait(); err != nil {
		return nil, p, errors.Wrapf(err, "list %s", col.Name())
	}

	return results, dto.NewPagination(opts.Page, opts.Limit, totalCount), nil
}
