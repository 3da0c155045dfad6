package scheduler

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/Meesho/BharatMLStack/task-scheduler/internal/errors"
)

const cycleErrorMsg = "Circular dependency detected in tasks"

// Order returns the task titles in an order where every dependency precedes
// the tasks that declare it. Ties are broken by first appearance: task titles
// in input order, then undeclared dependency names as they are met.
func Order(tasks []Task) ([]string, error) {
	return OrderWithPolicy(tasks, DefaultPolicy())
}

func OrderWithPolicy(tasks []Task, policy Policy) ([]string, error) {

	if err := validateTasks(tasks, policy); err != nil {
		return nil, err
	}
	graph := getTaskGraph(tasks)
	queue := getZeroInDegreeQueue(graph)

	order := make([]string, 0, graph.Size())
	for !queue.Empty() {
		value, _ := queue.Dequeue()
		title := value.(string)
		order = append(order, title)
		for _, successor := range getNode(graph, title).successors {
			node := getNode(graph, successor)
			node.inDegree--
			if node.inDegree == 0 {
				queue.Enqueue(successor)
			}
		}
	}

	if len(order) < graph.Size() {
		return nil, &errors.CycleError{ErrorMsg: cycleErrorMsg, Unresolved: getUnresolvedNodes(graph)}
	}
	return order, nil
}

// validateTasks only requires titles to be non-empty. Whitespace is a valid
// title and dependency names carry no format constraint at all; an empty
// dependency name is an undeclared node like any other.
func validateTasks(tasks []Task, policy Policy) error {

	titles := make(map[string]bool, len(tasks))
	for i, task := range tasks {
		if task.Title == "" {
			return &errors.InvalidInputError{ErrorMsg: fmt.Sprintf("Task at position %d has an empty title", i)}
		}
		if titles[task.Title] && policy.DuplicateTitles == RejectDuplicates {
			return &errors.InvalidInputError{ErrorMsg: fmt.Sprintf("Duplicate task title: %s", task.Title)}
		}
		titles[task.Title] = true
	}
	for _, task := range tasks {
		for _, dependency := range task.Dependencies {
			if !titles[dependency] && policy.UnknownDependencies == RejectUnknown {
				return &errors.InvalidInputError{ErrorMsg: fmt.Sprintf("Task %s depends on unknown task %s", task.Title, dependency)}
			}
		}
	}
	return nil
}

// getTaskGraph inserts every title before any dependency name so that
// declared tasks always win ties against implicit ones.
func getTaskGraph(tasks []Task) *linkedhashmap.Map {

	graph := linkedhashmap.New()
	for _, task := range tasks {
		putNodeIfAbsent(graph, task.Title)
	}
	for _, task := range tasks {
		dependent := getNode(graph, task.Title)
		for _, dependency := range task.Dependencies {
			prerequisite := putNodeIfAbsent(graph, dependency)
			prerequisite.successors = append(prerequisite.successors, task.Title)
			dependent.inDegree++
		}
	}
	return graph
}

func putNodeIfAbsent(graph *linkedhashmap.Map, title string) *graphNode {
	if value, found := graph.Get(title); found {
		return value.(*graphNode)
	}
	node := &graphNode{}
	graph.Put(title, node)
	return node
}

func getNode(graph *linkedhashmap.Map, title string) *graphNode {
	value, _ := graph.Get(title)
	return value.(*graphNode)
}

func getZeroInDegreeQueue(graph *linkedhashmap.Map) *linkedlistqueue.Queue {

	queue := linkedlistqueue.New()
	it := graph.Iterator()
	for it.Next() {
		if it.Value().(*graphNode).inDegree == 0 {
			queue.Enqueue(it.Key())
		}
	}
	return queue
}

func getUnresolvedNodes(graph *linkedhashmap.Map) []string {

	unresolved := make([]string, 0)
	it := graph.Iterator()
	for it.Next() {
		if it.Value().(*graphNode).inDegree > 0 {
			unresolved = append(unresolved, it.Key().(string))
		}
	}
	return unresolved
}
